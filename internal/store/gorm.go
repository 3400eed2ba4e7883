// /internal/store/gorm.go
package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rjdoces/rj-doces/internal/model"
)

// Gorm implementa CatalogStore e OrderStore sobre Postgres. É o caminho
// "backend" da aplicação; o handle do banco pertence ao store, não a um
// global de pacote.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(dsn string) (*Gorm, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("conectar ao banco: %w", err)
	}

	if err := db.AutoMigrate(&model.Produto{}, &model.Pedido{}, &model.ItemPedido{}); err != nil {
		return nil, fmt.Errorf("executar migrações: %w", err)
	}

	return &Gorm{db: db}, nil
}

func (g *Gorm) Produtos() ([]model.Produto, error) {
	var produtos []model.Produto
	if err := g.db.Order("created_at asc").Find(&produtos).Error; err != nil {
		return nil, err
	}
	return produtos, nil
}

func (g *Gorm) SalvarProduto(p model.Produto) error {
	if p.Preco.IsNegative() {
		return &model.ValidationError{Campos: []string{"price"}}
	}
	return g.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&p).Error
}

func (g *Gorm) RemoverProduto(id string) error {
	// Id ausente resulta em zero linhas afetadas; é no-op, não erro.
	return g.db.Delete(&model.Produto{}, "id = ?", id).Error
}

func (g *Gorm) CriarPedido(p model.Pedido) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		var existente model.Pedido
		err := tx.Select("id").First(&existente, "id = ?", p.ID).Error
		if err == nil {
			return fmt.Errorf("pedido %s: %w", p.ID, ErrIDDuplicado)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		// Cria o pedido e os itens na mesma transação.
		return tx.Create(&p).Error
	})
}

func (g *Gorm) Pedidos() ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := g.db.Preload("Items").Order("created_at desc").Find(&pedidos).Error
	if err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (g *Gorm) Pedido(id string) (model.Pedido, error) {
	var pedido model.Pedido
	err := g.db.Preload("Items").First(&pedido, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Pedido{}, fmt.Errorf("pedido %s: %w", id, ErrNaoEncontrado)
	}
	if err != nil {
		return model.Pedido{}, err
	}
	return pedido, nil
}

func (g *Gorm) AtualizarStatus(id string, status model.StatusPedido) error {
	if !status.Valido() {
		return &model.ValidationError{Campos: []string{"status"}}
	}

	result := g.db.Model(&model.Pedido{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("pedido %s: %w", id, ErrNaoEncontrado)
	}
	return nil
}
