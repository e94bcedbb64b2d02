package payment

import "errors"

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an amount in the smallest currency unit.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyBy(n int64) Money {
	return Money{cents: m.cents * n}
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

type Method string

const (
	MethodCredit Method = "credit"
	MethodDebit  Method = "debit"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCredit, MethodDebit:
		return true
	default:
		return false
	}
}
