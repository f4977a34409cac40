package dtoform_test

import (
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"

	"github.com/flakey-bit/dtoform"
)

// ISO 8601 with seven fractional digits, as produced by .NET's round-trip
// "O" format.
const roundTripLayout = "2006-01-02T15:04:05.0000000"

var birthday = time.Date(1983, 11, 7, 0, 0, 0, 0, time.UTC)

// Slots carry converter factories, which cannot be compared.
var ignoreConverter = cmpopts.IgnoreFields(dtoform.Slot{}, "Converter")

var decimalComparer = cmp.Comparer(func(x, y decimal.Decimal) bool {
	return x.Equal(y)
})

type Account struct {
	SomeProperty    string
	AnotherProperty string `form:"another_property"`
	Child           *AccountChild

	private string
}

type AccountChild struct {
	SomeNumber int               `form:"the_number"`
	Nested     *AccountGrandchild `form:"nested_child"`
}

type AccountGrandchild struct {
	SomeDate time.Time `form:"a_value" formconv:"roundtrip"`
}

type Outer struct {
	A string
	B *Inner
}

type Inner struct {
	C int
}

type Node struct {
	Name string
	Next *Node
}

type Diamond struct {
	Left  *Inner
	Right *Inner
}

type Address struct {
	Street string `form:"street"`
	City   string `form:"city"`
}

type Customer struct {
	Name    string   `form:"name"`
	Address Address  `form:"address"`
	Home    *Address `form:"home"`
}

type Invoice struct {
	Number   uint64          `form:"number"`
	Total    decimal.Decimal `form:"total"`
	Rate     float64         `form:"rate"`
	Due      time.Time       `form:"due" formconv:"date"`
	Paid     *time.Time      `form:"paid" formconv:"date"`
	Note     *string         `form:"note"`
	Internal string          `form:"-"`
	Legacy   string          `form:"legacy,ignore"`
}

type Flagged struct {
	Name   string
	Active bool `form:"active"`
}

type Code string

type Tagged struct {
	Code Code
	Tags []string
}

func roundTripConverter() dtoform.Option {
	return dtoform.WithConverter("roundtrip", dtoform.TimeConverter(roundTripLayout))
}

func dateConverter() dtoform.Option {
	return dtoform.WithConverter("date", dtoform.TimeConverter(time.DateOnly))
}

func newAccount() *Account {
	return &Account{
		SomeProperty:    "Foo",
		AnotherProperty: "Bar 123",
		Child: &AccountChild{
			SomeNumber: 42,
			Nested: &AccountGrandchild{
				SomeDate: birthday,
			},
		},
		private: "failure",
	}
}

func cycle(length int) *Node {
	head := &Node{Name: "n0"}
	tail := head
	for i := 1; i < length; i++ {
		tail.Next = &Node{Name: "n" + string(rune('0'+i))}
		tail = tail.Next
	}
	tail.Next = head
	return head
}

func stringPointer(s string) *string {
	return &s
}
