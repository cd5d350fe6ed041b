package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNegotiationStatus_IsTerminal(t *testing.T) {
	if NegotiationStatusActive.IsTerminal() {
		t.Fatalf("active must not be terminal")
	}
	if !NegotiationStatusCompleted.IsTerminal() || !NegotiationStatusCancelled.IsTerminal() {
		t.Fatalf("completed and cancelled must be terminal")
	}
}

func TestMessageSender_IsParty(t *testing.T) {
	if !SenderBuyer.IsParty() || !SenderSupplier.IsParty() {
		t.Fatalf("buyer and supplier are parties")
	}
	if SenderAI.IsParty() || SenderSystem.IsParty() {
		t.Fatalf("ai and system are not parties")
	}
}

func TestNegotiation_Clone(t *testing.T) {
	counter := decimal.NewFromInt(120)
	offer := decimal.NewFromInt(100)
	conf := 0.5
	n := Negotiation{
		ID:           "neg-1",
		BuyerID:      "B1",
		SupplierID:   "S1",
		CurrentOffer: decimal.NewFromInt(100),
		CounterOffer: &counter,
		Messages: []NegotiationMessage{
			{ID: "m1", Sender: SenderBuyer, Offer: &offer, Timestamp: time.Unix(10, 0), Confidence: &conf},
		},
	}

	c := n.Clone()
	*c.CounterOffer = decimal.NewFromInt(1)
	*c.Messages[0].Offer = decimal.NewFromInt(1)
	*c.Messages[0].Confidence = 1
	c.Messages = append(c.Messages, NegotiationMessage{ID: "m2"})

	if !n.CounterOffer.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("counter offer aliased: %s", n.CounterOffer)
	}
	if !n.Messages[0].Offer.Equal(decimal.NewFromInt(100)) || *n.Messages[0].Confidence != 0.5 {
		t.Fatalf("message aliased: %+v", n.Messages[0])
	}
	if len(n.Messages) != 1 {
		t.Fatalf("messages slice aliased")
	}
	if !n.HasParticipant("B1") || !n.HasParticipant("S1") || n.HasParticipant("X") {
		t.Fatalf("unexpected participant check")
	}
	if !n.LastMessageAt().Equal(time.Unix(10, 0)) {
		t.Fatalf("unexpected last message time")
	}
}

func TestValidOffer(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"100000", true},
		{"100000.25", true},
		{"0.0001", true},
		{"9999999999999999.9999", true},
		{"0", false},
		{"-5", false},
		{"0.00001", false},
		{"100000.12345", false},
		{"10000000000000000", false},
		{"12345678901234567.5", false},
	}
	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		if got := ValidOffer(d); got != tt.want {
			t.Fatalf("ValidOffer(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNegotiation_PartyRole(t *testing.T) {
	n := Negotiation{BuyerID: "B1", SupplierID: "S1"}
	self := Negotiation{BuyerID: "U1", SupplierID: "U1"}

	tests := []struct {
		name    string
		n       Negotiation
		user    string
		claimed MessageSender
		want    MessageSender
		ok      bool
	}{
		{"buyer derived", n, "B1", "", SenderBuyer, true},
		{"supplier derived", n, "S1", "", SenderSupplier, true},
		{"buyer claims buyer", n, "B1", SenderBuyer, SenderBuyer, true},
		{"buyer claims supplier", n, "B1", SenderSupplier, SenderSupplier, false},
		{"supplier claims buyer", n, "S1", SenderBuyer, SenderBuyer, false},
		{"outsider", n, "MALLORY", "", "", false},
		{"outsider claims buyer", n, "MALLORY", SenderBuyer, SenderBuyer, false},
		{"empty user", n, "", "", "", false},
		{"ai is never a party", n, "B1", SenderAI, "", false},
		{"same user both sides claims supplier", self, "U1", SenderSupplier, SenderSupplier, true},
		{"same user both sides derived", self, "U1", "", SenderBuyer, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.n.PartyRole(tt.user, tt.claimed)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("role = %q, want %q", got, tt.want)
			}
		})
	}
}
