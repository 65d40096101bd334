package internal

import (
	"testing"

	"lundao/internal/domain"
)

func TestWouldLoseExistingMaxGoal(t *testing.T) {
	topics := []domain.Topic{{ID: 0, Goals: []int{2}}, {ID: 1, Goals: []int{3}}}

	tests := []struct {
		name  string
		table []domain.Card
		card  domain.Card
		want  bool
	}{
		{"Merges the goal card away", []domain.Card{card(0, 2)}, card(0, 2), true},
		{"Lower card keeps the goal", []domain.Card{card(0, 2)}, card(0, 1), false},
		{"Goal not reached yet", []domain.Card{card(0, 1)}, card(0, 1), false},
		{"Inactive topic", []domain.Card{card(5, 2)}, card(5, 2), false},
		{"Other topic's goal untouched", []domain.Card{card(0, 2)}, card(1, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := domain.NewState(topics, []domain.Card{tt.card}, tt.table, 2, 3, nil)
			if got := WouldLoseExistingMaxGoal(tt.card, state); got != tt.want {
				t.Errorf("WouldLoseExistingMaxGoal(%v) = %v, want %v", tt.card, got, tt.want)
			}
		})
	}
}

func TestBanksMerge(t *testing.T) {
	topics := []domain.Topic{{ID: 1, Goals: []int{3}}}
	table := []domain.Card{card(0, 2), card(1, 1)}
	state := domain.NewState(topics, []domain.Card{card(0, 2), card(1, 1), card(0, 1)}, table, 0, 2, nil)

	if !BanksMerge(card(0, 2), state) {
		t.Error("Expected (0,2) to bank a merge on a finished topic")
	}
	if BanksMerge(card(1, 1), state) {
		t.Error("Active topic cards never bank")
	}
	if BanksMerge(card(0, 1), state) {
		t.Error("No equal card on the table, nothing to bank")
	}
}
