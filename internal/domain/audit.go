package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions.
const (
	ActionRegister     = "REGISTER"
	ActionLogin        = "LOGIN"
	ActionAddMoney     = "ADD_MONEY"
	ActionPayBill      = "PAY_BILL"
	ActionBuyInternet  = "BUY_INTERNET"
	ActionBuyInsurance = "BUY_INSURANCE"
	ActionSendMessage  = "SEND_MESSAGE"
	ActionPlayGame     = "PLAY_GAME"
	ActionAddPlugin    = "ADD_PLUGIN"
)

// SystemUser is recorded for actions without an acting user.
const SystemUser = "SYSTEM"

// AuditEvent is a single entry of the audit log.
type AuditEvent struct {
	ID     uuid.UUID `json:"id"`
	Action string    `json:"action"`
	User   string    `json:"user"`
	Time   time.Time `json:"time"`
}
