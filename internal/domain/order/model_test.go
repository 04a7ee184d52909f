package order

import (
	"context"
	"testing"
	"time"

	"barstock/internal/core/entity"
	"barstock/internal/core/id"
	"barstock/internal/core/money"
)

func newTestOrder() *Order {
	o := NewOrder(id.New().String(), id.New(), entity.UserStub{ID: id.New().String(), Name: "Tester"})
	o.Number = "ORD-2026-00001"
	o.ReqDeliveryDate = time.Now().Add(48 * time.Hour)
	return o
}

func TestOrder_Totals(t *testing.T) {
	o := newTestOrder()

	o.AddLine(id.New(), 6, money.Must("18.50"))
	o.AddLine(id.New(), 2.5, money.Must("7.20"))

	// 6 x 18.50 = 111.00, 2.5 x 7.20 = 18.00
	if got := o.Total.StringFixed(2); got != "129.00" {
		t.Errorf("Total = %s, want 129.00", got)
	}
	// 129.00 x 1.2 = 154.80
	if got := o.TotalWithVAT.StringFixed(2); got != "154.80" {
		t.Errorf("TotalWithVAT = %s, want 154.80", got)
	}

	if o.Lines[0].LineNo != 1 || o.Lines[1].LineNo != 2 {
		t.Errorf("line numbers not sequential: %d, %d", o.Lines[0].LineNo, o.Lines[1].LineNo)
	}
}

func TestOrder_Validate(t *testing.T) {
	o := newTestOrder()
	if err := o.Validate(context.Background()); err == nil {
		t.Error("order without lines should not validate")
	}

	o.AddLine(id.New(), 6, money.Must("18.50"))
	if err := o.Validate(context.Background()); err != nil {
		t.Errorf("valid order failed validation: %v", err)
	}

	o.Lines[0].Ammount = 0
	if err := o.Validate(context.Background()); err == nil {
		t.Error("zero ammount should not validate")
	}
}

func TestOrder_StatusTransitions(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusDraft, StatusSent, true},
		{StatusSent, StatusConfirmed, true},
		{StatusSent, StatusDraft, true},
		{StatusConfirmed, StatusDelivered, true},
		{StatusDelivered, StatusPaid, true},
		{StatusDraft, StatusDelivered, false},
		{StatusPaid, StatusDraft, false},
		{StatusDelivered, StatusConfirmed, false},
		{"bogus", StatusSent, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestOrder_Editability(t *testing.T) {
	o := newTestOrder()

	for _, s := range []string{StatusDraft, StatusSent, StatusConfirmed} {
		o.Status = s
		if !o.IsEditable() {
			t.Errorf("order in %s should be editable", s)
		}
		if o.IsPurchase() {
			t.Errorf("order in %s should not count as purchase", s)
		}
	}

	for _, s := range []string{StatusDelivered, StatusPaid} {
		o.Status = s
		if o.IsEditable() {
			t.Errorf("order in %s should be frozen", s)
		}
		if !o.IsPurchase() {
			t.Errorf("order in %s should count as purchase", s)
		}
	}
}
