package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

type EmployeePoints struct {
	EmployeeID int64 `json:"employee_id"`
	Points     int   `json:"points"`
}

type MenuTally struct {
	MenuID int64            `json:"menu_id"`
	Points int              `json:"points"`
	Votes  []EmployeePoints `json:"votes"`
}

// DailyResults holds one tally per menu in the order the menus were first seen.
type DailyResults struct {
	Menus []MenuTally
}

// Tally groups votes by menu, summing points per menu.
func Tally(votes []*Vote) DailyResults {
	var results DailyResults
	index := make(map[int64]int)
	for _, v := range votes {
		i, ok := index[v.MenuID]
		if !ok {
			i = len(results.Menus)
			index[v.MenuID] = i
			results.Menus = append(results.Menus, MenuTally{MenuID: v.MenuID, Votes: []EmployeePoints{}})
		}
		results.Menus[i].Points += v.Points
		results.Menus[i].Votes = append(results.Menus[i].Votes, EmployeePoints{
			EmployeeID: v.EmployeeID,
			Points:     v.Points,
		})
	}
	return results
}

func (r DailyResults) Get(menuID int64) (MenuTally, bool) {
	for _, m := range r.Menus {
		if m.MenuID == menuID {
			return m, true
		}
	}
	return MenuTally{}, false
}

// MarshalJSON encodes the results as an object keyed by menu id. Keys keep
// insertion order, which a Go map would not.
func (r DailyResults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range r.Menus {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.FormatInt(m.MenuID, 10)))
		buf.WriteByte(':')
		entry, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		buf.Write(entry)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MenuResult is a persisted snapshot of a menu's tally for a day.
type MenuResult struct {
	MenuID        int64     `json:"menu_id"`
	Date          Date      `json:"date"`
	Points        int64     `json:"points"`
	VoteCount     int64     `json:"vote_count"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}
