package models

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Money is an exact decimal amount. It is stored as BSON Decimal128 and
// rendered as a fixed two-decimal string in JSON.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d}
}

func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.StringFixed(2))), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid money value %s: %w", string(data), err)
	}
	m.Decimal = d
	return nil
}

func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	d128, err := primitive.ParseDecimal128(m.String())
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(d128)
}

func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDecimal128:
		d128, ok := raw.Decimal128OK()
		if !ok {
			return fmt.Errorf("money: malformed decimal128 value")
		}
		d, err := decimal.NewFromString(d128.String())
		if err != nil {
			return fmt.Errorf("money: %w", err)
		}
		m.Decimal = d
	case bson.TypeDouble:
		f, ok := raw.DoubleOK()
		if !ok {
			return fmt.Errorf("money: malformed double value")
		}
		m.Decimal = decimal.NewFromFloat(f)
	case bson.TypeString:
		s, ok := raw.StringValueOK()
		if !ok {
			return fmt.Errorf("money: malformed string value")
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("money: %w", err)
		}
		m.Decimal = d
	case bson.TypeInt32:
		i, ok := raw.Int32OK()
		if !ok {
			return fmt.Errorf("money: malformed int32 value")
		}
		m.Decimal = decimal.NewFromInt(int64(i))
	case bson.TypeInt64:
		i, ok := raw.Int64OK()
		if !ok {
			return fmt.Errorf("money: malformed int64 value")
		}
		m.Decimal = decimal.NewFromInt(i)
	default:
		return fmt.Errorf("money: cannot decode BSON type %s", t)
	}
	return nil
}
