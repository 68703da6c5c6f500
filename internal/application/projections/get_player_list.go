package projections

import (
	"cmp"
	"slices"

	"academy/internal/application/listutil"
	"academy/internal/application/store"
)

// PlayerSortColumns are the fields the player list can be sorted by.
var PlayerSortColumns = []string{"name", "studentId", "balance", "joinedDate"}

// PlayerFilterKeys are the exact-match filters the player list accepts.
var PlayerFilterKeys = []string{"status", "batch"}

// PlayerRow is one line of the player directory.
type PlayerRow struct {
	ID           string `json:"id"`
	StudentID    string `json:"studentId"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	GuardianName string `json:"guardianName"`
	PhotoURL     string `json:"photoUrl"`
	BatchID      string `json:"batchId"`
	BatchName    string `json:"batchName"`
	Status       string `json:"status"`
	Balance      int    `json:"balance"`
	JoinedDate   string `json:"joinedDate"`
}

// GetPlayerListResult carries the query result.
type GetPlayerListResult struct {
	Players []PlayerRow       `json:"players"`
	Page    listutil.PageInfo `json:"page"`
}

// QueryGetPlayerList searches, filters, sorts and pages the player directory.
// PRE: params come from listutil.ParseListParams with PlayerSortColumns and PlayerFilterKeys
// POST: Search matches name, contact email, student ID or guardian name, ignoring case
func QueryGetPlayerList(snap store.Snapshot, params listutil.ListParams) GetPlayerListResult {
	rows := []PlayerRow{}
	for _, p := range snap.Players {
		if !listutil.MatchesSearch(params.Search, p.Name, p.ContactEmail, p.StudentID, p.GuardianName) {
			continue
		}
		if s, ok := params.Filters["status"]; ok && p.Status != s {
			continue
		}
		if b, ok := params.Filters["batch"]; ok && p.BatchID != b {
			continue
		}
		row := PlayerRow{
			ID:           p.ID,
			StudentID:    p.StudentID,
			Name:         p.Name,
			ContactEmail: p.ContactEmail,
			GuardianName: p.GuardianName,
			PhotoURL:     p.PhotoURL,
			BatchID:      p.BatchID,
			Status:       p.Status,
			Balance:      p.Balance,
			JoinedDate:   p.JoinedDate,
		}
		if b, ok := snap.FindBatch(p.BatchID); ok {
			row.BatchName = b.Name
		}
		rows = append(rows, row)
	}

	if params.Sort != "" {
		slices.SortStableFunc(rows, func(a, b PlayerRow) int {
			c := comparePlayerRows(a, b, params.Sort)
			if params.Descending() {
				return -c
			}
			return c
		})
	}

	page, info := listutil.Paginate(rows, params.PageParams)
	return GetPlayerListResult{Players: page, Page: info}
}

func comparePlayerRows(a, b PlayerRow, column string) int {
	switch column {
	case "studentId":
		return cmp.Compare(a.StudentID, b.StudentID)
	case "balance":
		return cmp.Compare(a.Balance, b.Balance)
	case "joinedDate":
		return cmp.Compare(a.JoinedDate, b.JoinedDate)
	default:
		return cmp.Compare(a.Name, b.Name)
	}
}
