package model

import "strings"

// ValidationError indica entrada inválida corrigível pelo usuário. Campos
// carrega os nomes (no formato do JSON da API) dos campos ausentes ou
// inválidos, para que a interface possa apontar o que reapresentar.
type ValidationError struct {
	Campos []string
}

func (e *ValidationError) Error() string {
	return "campos inválidos ou ausentes: " + strings.Join(e.Campos, ", ")
}
