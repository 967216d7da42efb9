package sale

import (
	"strings"

	"petshop-api/internal/pkg/errs"
)

type Status string

const (
	StatusOpen Status = "open"
	StatusPaid Status = "paid"
)

func (s Status) String() string {
	return string(s)
}

type ItemKind string

const (
	KindService ItemKind = "service"
	KindProduct ItemKind = "product"
)

func (k ItemKind) String() string {
	return string(k)
}

// ParseItemKind accepts both the stored names and the Portuguese wire names.
func ParseItemKind(s string) (ItemKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "service", "servico", "serviço":
		return KindService, nil
	case "product", "produto":
		return KindProduct, nil
	default:
		return "", ErrInvalidKind
	}
}

var (
	ErrNoItems         = errs.Invalid("a sale needs at least one item")
	ErrInvalidKind     = errs.Invalid("tipo must be servico or produto")
	ErrInvalidRef      = errs.Invalid("ref_id must be a positive id")
	ErrInvalidQuantity = errs.Invalid("quantidade must be greater than zero")
	ErrQuantityScale   = errs.Invalid("quantidade allows at most 3 decimal places and 9 integer digits")
	ErrInvalidClient   = errs.Invalid("cliente_id must be a positive id")
	ErrInactiveItem    = errs.Invalid("catalog item is inactive")
	ErrInvalidStatus   = errs.Invalid("status must be open or paid")

	ErrNotFound    = errs.NotFound("sale not found")
	ErrAlreadyPaid = errs.Conflict("sale is already paid")
)
