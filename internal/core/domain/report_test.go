package domain_test

import (
	"testing"

	"github.com/DanielEsLoH/StockFlow-sub014/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSaleAggregateTotals(t *testing.T) {
	agg := domain.SaleAggregate{
		ByMethod: map[domain.PaymentMethod]decimal.Decimal{
			domain.PaymentCash:     decimal.NewFromInt(300),
			domain.PaymentCard:     decimal.NewFromInt(450),
			domain.PaymentTransfer: decimal.NewFromInt(50),
		},
		Count: 14,
	}

	assert.True(t, agg.TotalAmount().Equal(decimal.NewFromInt(800)))
	assert.True(t, agg.CashAmount().Equal(decimal.NewFromInt(300)))
}

func TestSaleAggregateNoCash(t *testing.T) {
	agg := domain.SaleAggregate{
		ByMethod: map[domain.PaymentMethod]decimal.Decimal{
			domain.PaymentCard: decimal.NewFromInt(120),
		},
		Count: 2,
	}

	assert.True(t, agg.CashAmount().IsZero())
}

func TestSaleAggregateEmpty(t *testing.T) {
	var agg domain.SaleAggregate

	assert.True(t, agg.TotalAmount().IsZero())
	assert.True(t, agg.CashAmount().IsZero())
}
