// /internal/handler/session.go
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/rjdoces/rj-doces/internal/cart"
)

const (
	// SessionName identifica o cookie de sessão da loja.
	SessionName = "rj-doces-session"
	// CartSessionKey é a chave do carrinho dentro da sessão.
	CartSessionKey = "shopping_cart"
)

// carrinhoDaSessao recupera o carrinho da sessão ou devolve um vazio.
// O tipo cart.Carrinho precisa estar registrado no gob (feito no main e
// no setup dos testes).
func carrinhoDaSessao(store *sessions.CookieStore, c *gin.Context) (*sessions.Session, *cart.Carrinho) {
	session, _ := store.Get(c.Request, SessionName)
	carrinho := cart.Novo()
	if v, ok := session.Values[CartSessionKey].(cart.Carrinho); ok {
		carrinho = &v
	}
	return session, carrinho
}

// salvarCarrinho grava o carrinho de volta na sessão.
func salvarCarrinho(session *sessions.Session, carrinho *cart.Carrinho, c *gin.Context) error {
	session.Values[CartSessionKey] = *carrinho
	return session.Save(c.Request, c.Writer)
}
