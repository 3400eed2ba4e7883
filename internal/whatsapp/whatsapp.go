// /internal/whatsapp/whatsapp.go
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rjdoces/rj-doces/internal/model"
)

// quebraLinha é a quebra de linha percent-encoded que o deep link do
// WhatsApp espera dentro do parâmetro text.
const quebraLinha = "%0A"

// FormatMessage monta o texto do pedido para confirmação via WhatsApp.
// É uma função pura e determinística: mesmo pedido, mesma mensagem. A
// entrega da mensagem (abrir o link) fica fora do núcleo.
func FormatMessage(p model.Pedido) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*NOVO PEDIDO #%s*%s%s", p.ID, quebraLinha, quebraLinha)
	fmt.Fprintf(&b, "*Cliente:* %s%s", p.Cliente.Nome, quebraLinha)
	fmt.Fprintf(&b, "*Telefone:* %s%s", p.Cliente.Telefone, quebraLinha)

	if p.MetodoEntrega == model.EntregaDelivery {
		fmt.Fprintf(&b, "*Endereço:* %s, %s - %s%s",
			p.Cliente.Endereco, p.Cliente.Numero, p.Cliente.Bairro, quebraLinha)
		if p.Cliente.Complemento != "" {
			fmt.Fprintf(&b, "*Comp:* %s%s", p.Cliente.Complemento, quebraLinha)
		}
	} else {
		b.WriteString("*Retirada no Local*" + quebraLinha)
	}

	b.WriteString(quebraLinha + "*ITENS:*" + quebraLinha)
	for _, item := range p.Items {
		fmt.Fprintf(&b, "- %dx %s (R$ %s)%s",
			item.Quantidade, item.Nome, item.Subtotal().StringFixed(2), quebraLinha)
	}

	observacoes := p.Observacoes
	if observacoes == "" {
		observacoes = "Nenhuma"
	}
	fmt.Fprintf(&b, "%s*Observações:* %s%s", quebraLinha, observacoes, quebraLinha)
	fmt.Fprintf(&b, "*Pagamento:* %s%s", p.MetodoPagamento, quebraLinha)
	fmt.Fprintf(&b, "*TOTAL:* R$ %s", p.Total.StringFixed(2))

	return b.String()
}

// Link monta o deep link wa.me pronto para abrir. Cada segmento da mensagem
// é escapado para a query string; as quebras %0A são preservadas como estão,
// senão seriam duplamente codificadas.
func Link(telefoneLoja string, p model.Pedido) string {
	segmentos := strings.Split(FormatMessage(p), quebraLinha)
	for i, s := range segmentos {
		segmentos[i] = url.QueryEscape(s)
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", telefoneLoja, strings.Join(segmentos, quebraLinha))
}
