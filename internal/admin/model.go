package admin

import "time"

type SellerStatus string

const (
	SellerPending   SellerStatus = "Pending Approval"
	SellerApproved  SellerStatus = "Approved"
	SellerSuspended SellerStatus = "Suspended"
)

type Seller struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Status SellerStatus `json:"status"`
	Joined time.Time    `json:"joined"`
	Sales  int          `json:"sales"`
}

type AuditStatus string

const (
	AuditUnverified AuditStatus = "unverified"
	AuditRunning    AuditStatus = "auditing"
	AuditSafe       AuditStatus = "safe"
	AuditFlagged    AuditStatus = "flagged"
)

// Audit is the moderation state of one catalog product.
type Audit struct {
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName"`
	Status      AuditStatus `json:"status"`
	Notes       string      `json:"notes"`
	UpdatedAt   time.Time   `json:"updatedAt,omitempty"`
}

type Overview struct {
	Sellers  map[SellerStatus]int `json:"sellers"`
	Products int                  `json:"products"`
	Audits   map[AuditStatus]int  `json:"audits"`
}
