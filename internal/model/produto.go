// /internal/model/produto.go
package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Categoria classifica um produto na vitrine.
type Categoria string

const (
	CategoriaSalgados Categoria = "Salgados"
	CategoriaDoces    Categoria = "Doces"
	CategoriaCombos   Categoria = "Combos"
	CategoriaBebidas  Categoria = "Bebidas"
)

// Categorias lista todas as categorias na ordem exibida na vitrine.
func Categorias() []Categoria {
	return []Categoria{CategoriaSalgados, CategoriaDoces, CategoriaCombos, CategoriaBebidas}
}

// Produto representa um item à venda na loja.
type Produto struct {
	ID         string          `json:"id" gorm:"primaryKey;size:64"`
	Nome       string          `json:"name" gorm:"not null;size:100"`
	Descricao  string          `json:"description" gorm:"type:text"`
	Preco      decimal.Decimal `json:"price" gorm:"type:numeric(10,2);not null"`
	Categoria  Categoria       `json:"category" gorm:"type:varchar(20);not null"`
	ImagemURL  string          `json:"imageUrl"`
	Disponivel bool            `json:"isAvailable" gorm:"default:true"`
	CreatedAt  time.Time       `json:"-"`
}

// produtoJSON aceita as variações de forma que os backends antigos produzem
// (imageUrl/image_url, disponibilidade como booleano ou 0/1). A normalização
// acontece uma única vez aqui; nenhum consumidor precisa conhecer as variações.
type produtoJSON struct {
	ID              string          `json:"id"`
	Nome            string          `json:"name"`
	Descricao       string          `json:"description"`
	Preco           decimal.Decimal `json:"price"`
	Categoria       Categoria       `json:"category"`
	ImagemURL       string          `json:"imageUrl"`
	ImagemURLSnake  string          `json:"image_url"`
	Disponivel      json.RawMessage `json:"isAvailable"`
	DisponivelSnake json.RawMessage `json:"is_available"`
}

func (p *Produto) UnmarshalJSON(data []byte) error {
	var raw produtoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.ID = raw.ID
	p.Nome = raw.Nome
	p.Descricao = raw.Descricao
	p.Preco = raw.Preco
	p.Categoria = raw.Categoria

	p.ImagemURL = raw.ImagemURL
	if p.ImagemURL == "" {
		p.ImagemURL = raw.ImagemURLSnake
	}

	disponivel := raw.Disponivel
	if disponivel == nil {
		disponivel = raw.DisponivelSnake
	}
	valor, err := parseDisponivel(disponivel)
	if err != nil {
		return err
	}
	p.Disponivel = valor
	return nil
}

// parseDisponivel aceita booleano ou inteiro (0/1). Ausente conta como
// disponível, o mesmo padrão do banco.
func parseDisponivel(raw json.RawMessage) (bool, error) {
	if raw == nil {
		return true, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return false, err
	}
	return n != 0, nil
}
