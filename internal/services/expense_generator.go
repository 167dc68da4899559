package services

import (
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/schedule"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type spendingProfile struct {
	category string
	min, max float64
}

// dailySpending is the pool of everyday purchases the generator draws from.
var dailySpending = []spendingProfile{
	{"groceries", 8, 180},
	{"dining", 5, 90},
	{"transport", 2, 60},
	{"shopping", 10, 400},
	{"entertainment", 5, 120},
	{"health", 10, 250},
}

type billProfile struct {
	category    string
	description string
	frequency   schedule.Frequency
	min, max    float64
}

var recurringBills = []billProfile{
	{"housing", "Rent", schedule.FrequencyMonthly, 900, 2200},
	{"utilities", "Electricity", schedule.FrequencyMonthly, 40, 160},
	{"utilities", "Internet", schedule.FrequencyMonthly, 30, 90},
	{"subscriptions", "Streaming", schedule.FrequencyMonthly, 8, 20},
	{"insurance", "Car insurance", schedule.FrequencyYearly, 400, 1400},
	{"fitness", "Gym", schedule.FrequencyWeekly, 10, 35},
}

var paymentMethods = []string{"card", "cash", "bank_transfer", "direct_debit"}

type expenseGenerator struct {
	faker *gofakeit.Faker
}

// NewExpenseGenerator returns a generator of plausible demo data. A zero
// seed draws a random one.
func NewExpenseGenerator(seed uint64) ExpenseGeneratorInterface {
	return &expenseGenerator{faker: gofakeit.New(seed)}
}

// GenerateExpenses returns count expenses dated within [startDate, endDate],
// in chronological order.
func (g *expenseGenerator) GenerateExpenses(startDate, endDate time.Time, count int) []models.ExpenseInput {
	if count <= 0 || endDate.Before(startDate) {
		return []models.ExpenseInput{}
	}

	start := schedule.TruncateToDay(startDate)
	end := schedule.TruncateToDay(endDate)
	span := schedule.DaysBetween(start, end)

	inputs := make([]models.ExpenseInput, 0, count)
	for i := 0; i < count; i++ {
		profile := dailySpending[g.faker.IntRange(0, len(dailySpending)-1)]
		offset := 0
		if span > 0 {
			offset = g.faker.IntRange(0, span)
		}

		inputs = append(inputs, models.ExpenseInput{
			Amount:        g.amount(profile.min, profile.max),
			Category:      profile.category,
			PaymentMethod: g.faker.RandomString(paymentMethods),
			Description:   g.faker.Company(),
			Date:          start.AddDate(0, 0, offset),
		})
	}

	sortInputsByDate(inputs)
	return inputs
}

// GenerateRecurring returns one definition per bill profile starting on or
// shortly after startDate.
func (g *expenseGenerator) GenerateRecurring(startDate time.Time) []models.RecurringExpenseInput {
	start := schedule.TruncateToDay(startDate)

	inputs := make([]models.RecurringExpenseInput, 0, len(recurringBills))
	for _, bill := range recurringBills {
		inputs = append(inputs, models.RecurringExpenseInput{
			Amount:        g.amount(bill.min, bill.max),
			Category:      bill.category,
			PaymentMethod: "direct_debit",
			Description:   bill.description,
			Frequency:     bill.frequency,
			StartDate:     start.AddDate(0, 0, g.faker.IntRange(0, 27)),
		})
	}
	return inputs
}

func (g *expenseGenerator) amount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(g.faker.Price(min, max)).Round(2)
}

func sortInputsByDate(inputs []models.ExpenseInput) {
	for i := 1; i < len(inputs); i++ {
		for j := i; j > 0 && inputs[j].Date.Before(inputs[j-1].Date); j-- {
			inputs[j], inputs[j-1] = inputs[j-1], inputs[j]
		}
	}
}
