// /internal/store/seed.go
package store

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/rjdoces/rj-doces/internal/model"
)

// produtosIniciais é o cardápio inicial da loja, usado quando o catálogo está
// vazio na primeira subida.
func produtosIniciais() []model.Produto {
	return []model.Produto{
		{
			ID:         "1",
			Nome:       "Coxinha de Frango",
			Descricao:  "A clássica coxinha com massa de batata e recheio cremoso de frango.",
			Preco:      decimal.RequireFromString("6.50"),
			Categoria:  model.CategoriaSalgados,
			ImagemURL:  "https://images.unsplash.com/photo-1576158189445-5606e902b79a?auto=format&fit=crop&q=80&w=600",
			Disponivel: true,
		},
		{
			ID:         "2",
			Nome:       "Brigadeiro Gourmet",
			Descricao:  "Brigadeiro feito com chocolate belga e granulado especial.",
			Preco:      decimal.RequireFromString("4.00"),
			Categoria:  model.CategoriaDoces,
			ImagemURL:  "https://images.unsplash.com/photo-1599305445671-ac291c95aaa9?auto=format&fit=crop&q=80&w=600",
			Disponivel: true,
		},
		{
			ID:         "3",
			Nome:       "Combo Festa (50un)",
			Descricao:  "Mix de 25 coxinhas e 25 bolinhas de queijo.",
			Preco:      decimal.RequireFromString("89.90"),
			Categoria:  model.CategoriaCombos,
			ImagemURL:  "https://images.unsplash.com/photo-1541795792062-39425861b7d8?auto=format&fit=crop&q=80&w=600",
			Disponivel: true,
		},
		{
			ID:         "4",
			Nome:       "Coca-Cola 2L",
			Descricao:  "Refrigerante gelado para acompanhar.",
			Preco:      decimal.RequireFromString("12.00"),
			Categoria:  model.CategoriaBebidas,
			ImagemURL:  "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?auto=format&fit=crop&q=80&w=600",
			Disponivel: true,
		},
		{
			ID:         "5",
			Nome:       "Empada de Camarão",
			Descricao:  "Massa podre que derrete na boca com recheio farto.",
			Preco:      decimal.RequireFromString("7.50"),
			Categoria:  model.CategoriaSalgados,
			ImagemURL:  "https://images.unsplash.com/photo-1626645738196-c2a7c87a8f58?auto=format&fit=crop&q=80&w=600",
			Disponivel: true,
		},
	}
}

// SeedProdutos popula o catálogo com o cardápio inicial se ele estiver vazio.
func SeedProdutos(catalogo CatalogStore) error {
	existentes, err := catalogo.Produtos()
	if err != nil {
		return err
	}
	if len(existentes) > 0 {
		return nil
	}

	slog.Info("catálogo vazio, criando produtos iniciais")
	for _, p := range produtosIniciais() {
		if err := catalogo.SalvarProduto(p); err != nil {
			return err
		}
	}
	return nil
}
