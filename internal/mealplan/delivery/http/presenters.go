package http

import (
	"time"

	"github.com/priyanka7rc/laya/internal/mealplan"
)

// --- Request DTOs ---

type upsertReq struct {
	Day      string  `json:"day"       binding:"required,datetime=2006-01-02"`
	Meal     string  `json:"meal"      binding:"required,oneof=breakfast lunch dinner snack"`
	RecipeID *string `json:"recipe_id" binding:"omitempty,uuid"`
	Note     *string `json:"note"      binding:"omitempty,max=500"`
}

func (r upsertReq) toInput() mealplan.UpsertInput {
	return mealplan.UpsertInput{
		Day:      r.Day,
		Meal:     r.Meal,
		RecipeID: r.RecipeID,
		Note:     r.Note,
	}
}

type listWeekReq struct {
	Week string `form:"week" binding:"required"`
}

func (r listWeekReq) toInput() mealplan.ListWeekInput {
	return mealplan.ListWeekInput{Week: r.Week}
}

type clearReq struct {
	Day  string `form:"day"  binding:"required"`
	Meal string `form:"meal" binding:"required"`
}

func (r clearReq) toInput() mealplan.ClearInput {
	return mealplan.ClearInput{Day: r.Day, Meal: r.Meal}
}

// --- Response DTOs ---

type slotResp struct {
	ID        string    `json:"id"`
	Day       string    `json:"day"`
	Meal      string    `json:"meal"`
	RecipeID  *string   `json:"recipe_id,omitempty"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newSlotResp(s mealplan.Slot) slotResp {
	return slotResp{
		ID:        s.ID,
		Day:       s.Day,
		Meal:      s.Meal,
		RecipeID:  s.RecipeID,
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type upsertResp struct {
	Slot    slotResp `json:"slot"`
	Warning string   `json:"warning,omitempty"`
}

func newUpsertResp(out mealplan.UpsertOutput) upsertResp {
	return upsertResp{
		Slot:    newSlotResp(out.Slot),
		Warning: out.RegenWarning,
	}
}

type listWeekResp struct {
	Week  string     `json:"week"`
	Slots []slotResp `json:"slots"`
}

func newListWeekResp(out mealplan.ListWeekOutput) listWeekResp {
	slots := make([]slotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = newSlotResp(s)
	}
	return listWeekResp{Week: out.Week, Slots: slots}
}

type clearResp struct {
	Warning string `json:"warning,omitempty"`
}

func newClearResp(out mealplan.ClearOutput) clearResp {
	return clearResp{Warning: out.RegenWarning}
}
