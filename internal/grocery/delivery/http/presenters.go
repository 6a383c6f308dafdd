package http

import (
	"time"

	"github.com/priyanka7rc/laya/internal/grocery"
)

// --- Request DTOs ---

type weekReq struct {
	Week string `form:"week" binding:"required"`
}

func (r weekReq) toListInput() grocery.ListInput {
	return grocery.ListInput{Week: r.Week}
}

// Checked is a pointer so an explicit false survives required validation.
type setCheckedReq struct {
	ID      string `json:"-"` // populated from URI param
	Checked *bool  `json:"checked" binding:"required"`
}

func (r setCheckedReq) toInput() grocery.SetCheckedInput {
	return grocery.SetCheckedInput{
		ID:      r.ID,
		Checked: *r.Checked,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID        string    `json:"id"`
	Week      string    `json:"week"`
	Name      string    `json:"name"`
	Qty       *float64  `json:"qty,omitempty"`
	Unit      *string   `json:"unit,omitempty"`
	Checked   bool      `json:"checked"`
	CreatedAt time.Time `json:"created_at"`
}

func newItemResp(item grocery.Item) itemResp {
	return itemResp{
		ID:        item.ID,
		Week:      item.SourceWeek,
		Name:      item.Name,
		Qty:       item.Qty,
		Unit:      item.Unit,
		Checked:   item.Checked,
		CreatedAt: item.CreatedAt,
	}
}

type listResp struct {
	Week  string     `json:"week"`
	Items []itemResp `json:"items"`
}

func newListResp(out grocery.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{Week: out.Week, Items: items}
}

type setCheckedResp struct {
	Item itemResp `json:"item"`
}

func newSetCheckedResp(out grocery.SetCheckedOutput) setCheckedResp {
	return setCheckedResp{Item: newItemResp(out.Item)}
}
