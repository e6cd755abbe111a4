package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lodge/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: dto.FilterOperatorEq,
				Table:    "room_bookings",
			},
			wantWhere: "room_bookings.status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name: "like is case-insensitive",
			filter: dto.Filter{
				Field:    "name",
				Value:    "suite",
				Operator: dto.FilterOperatorLike,
				Table:    "rooms",
			},
			wantWhere: "LOWER(rooms.name) LIKE LOWER(:name) ",
			wantArgs:  map[string]any{"name": "%suite%"},
		},
		{
			name: "in expands slice values to named args",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"confirmed", "checked_in"},
				Operator: dto.FilterOperatorIn,
				Table:    "room_bookings",
			},
			wantWhere: "room_bookings.status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "confirmed", "status_1": "checked_in"},
		},
		{
			name: "less with explicit arg name",
			filter: dto.Filter{
				ArgName:  "overlap_check_out",
				Field:    "check_in_date",
				Value:    "2026-09-03",
				Operator: dto.FilterOperatorLess,
				Table:    "room_bookings",
			},
			wantWhere: "room_bookings.check_in_date < :overlap_check_out",
			wantArgs:  map[string]any{"overlap_check_out": "2026-09-03"},
		},
		{
			name: "greater with explicit arg name",
			filter: dto.Filter{
				ArgName:  "overlap_check_in",
				Field:    "check_out_date",
				Value:    "2026-09-01",
				Operator: dto.FilterOperatorGreater,
				Table:    "room_bookings",
			},
			wantWhere: "room_bookings.check_out_date > :overlap_check_in",
			wantArgs:  map[string]any{"overlap_check_in": "2026-09-01"},
		},
		{
			name: "not equal without table",
			filter: dto.Filter{
				Field:    "role",
				Value:    "admin",
				Operator: dto.FilterOperatorNotEq,
			},
			wantWhere: "role != :role",
			wantArgs:  map[string]any{"role": "admin"},
		},
		{
			name: "unknown operator yields nothing",
			filter: dto.Filter{
				Field:    "status",
				Value:    "pending",
				Operator: "between",
			},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("and group combines filters", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "room_id", Value: "room-1", Operator: dto.FilterOperatorEq, Table: "room_bookings"},
				dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "room_bookings"},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(room_bookings.room_id = :room_id AND room_bookings.status = :status)", where)
		assert.Equal(t, map[string]any{"room_id": "room-1", "status": "pending"}, args)
	})

	t.Run("or group for identity lookups", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{Field: "username", Value: "johndoe", Operator: dto.FilterOperatorEq, Table: "users"},
				dto.Filter{Field: "email", Value: "john@example.com", Operator: dto.FilterOperatorEq, Table: "users"},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(users.username = :username OR users.email = :email)", where)
		assert.Len(t, args, 2)
	})

	t.Run("nested groups", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "room_id", Value: "room-1", Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "status", Value: "confirmed", Operator: dto.FilterOperatorEq},
						dto.Filter{Field: "status", ArgName: "status_alt", Value: "checked_in", Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		where, args := group.GetWhereClause()

		assert.Equal(t, "(room_id = :room_id AND (status = :status OR status = :status_alt))", where)
		assert.Len(t, args, 3)
	})

	t.Run("empty group yields nothing", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})
}
