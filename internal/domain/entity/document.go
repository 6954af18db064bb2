package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocType tipo de documento de cuentas por cobrar (códigos del sistema administrativo).
type DocType string

const (
	DocTypeInvoice         DocType = "FACT"
	DocTypeDebitNote       DocType = "N/DB"
	DocTypeCreditNote      DocType = "N/CR"
	DocTypeAdvance         DocType = "ADEL"
	DocTypeManualAdjustPos DocType = "AJPM"
	DocTypeManualAdjustNeg DocType = "AJNM"
	DocTypeAutoAdjustPos   DocType = "AJPA"
	DocTypeAutoAdjustNeg   DocType = "AJNA"
	DocTypeCheck           DocType = "CHEQ"
	DocTypeDraft           DocType = "GIRO"
	DocTypeCollection      DocType = "COB"
	DocTypeReturn          DocType = "DEV"
)

var docTypeNames = map[DocType]string{
	DocTypeInvoice:         "Factura",
	DocTypeDebitNote:       "Nota de débito",
	DocTypeCreditNote:      "Nota de crédito",
	DocTypeAdvance:         "Adelanto",
	DocTypeManualAdjustPos: "Ajuste manual positivo",
	DocTypeManualAdjustNeg: "Ajuste manual negativo",
	DocTypeAutoAdjustPos:   "Ajuste automático positivo",
	DocTypeAutoAdjustNeg:   "Ajuste automático negativo",
	DocTypeCheck:           "Cheque",
	DocTypeDraft:           "Giro",
	DocTypeCollection:      "Cobro",
	DocTypeReturn:          "Devolución",
}

// Valid indica si el código pertenece al catálogo conocido.
func (t DocType) Valid() bool {
	_, ok := docTypeNames[t]
	return ok
}

// Description nombre legible del tipo de documento.
func (t DocType) Description() string {
	if n, ok := docTypeNames[t]; ok {
		return n
	}
	return string(t)
}

// AllowsNegativeBalance solo notas de crédito y adelantos pueden tener saldo a favor del cliente.
func (t DocType) AllowsNegativeBalance() bool {
	return t == DocTypeCreditNote || t == DocTypeAdvance
}

// RequiresDueDate facturas y notas de débito siempre tienen fecha de vencimiento.
func (t DocType) RequiresDueDate() bool {
	return t == DocTypeInvoice || t == DocTypeDebitNote
}

// Document movimiento de cuentas por cobrar. El saldo (Balance), no el monto, determina la antigüedad.
type Document struct {
	ID              string
	ClientID        string
	SellerID        *string
	CompanyID       *string
	DocType         DocType
	DocNumber       string
	Amount          decimal.Decimal
	Balance         decimal.Decimal
	IssueDate       time.Time
	DueDate         *time.Time
	Voided          bool
	PaymentTermCode *string
}

// SellerCode devuelve el vendedor o "" si el documento no tiene uno asignado.
func (d Document) SellerCode() string {
	if d.SellerID == nil {
		return ""
	}
	return *d.SellerID
}
