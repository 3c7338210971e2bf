package domain

import "time"

// Vote is an employee's points for one menu; (employee, menu) is unique.
type Vote struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	MenuID     int64     `json:"menu_id"`
	Points     int       `json:"points"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// V1Points is the fixed value recorded for every v1 cast; v1 carries no ranking.
const V1Points = 1

const TopMenusCount = 3

func ValidPoints(p int) bool {
	return p >= 1 && p <= 3
}

// CastRequest is the version-specific payload of a cast-vote call.
// Implementations: CastV1, CastV2.
type CastRequest interface {
	Version() APIVersion
	// Malformed reports a payload value of the wrong type. It is checked
	// after the caller's role.
	Malformed() error
}

type CastV1 struct {
	MenuID *int64 `json:"menu_id"`

	malformed *ValidationError
}

func (CastV1) Version() APIVersion { return V1 }

func (r CastV1) Malformed() error { return asError(r.malformed) }

type CastV2 struct {
	TopMenus []RankedMenu `json:"top_menus"`

	malformed *ValidationError
}

func (CastV2) Version() APIVersion { return V2 }

func (r CastV2) Malformed() error { return asError(r.malformed) }

const TopMenusRequired = "You must provide exactly 3 menus with respective points for version 2."

type RankedMenu struct {
	MenuID *int64 `json:"menu_id"`
	Points *int   `json:"points"`

	menuIDErr *ValidationError
}

// MenuIDError reports a menu_id that is not an integer.
func (m RankedMenu) MenuIDError() error { return asError(m.menuIDErr) }

type MyVote struct {
	MenuID int64 `json:"menu_id"`
	Points int   `json:"points"`
}
