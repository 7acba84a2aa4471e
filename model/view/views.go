package view

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Typed summaries for the few resources whose rows the console interprets
// beyond opaque display. Decoding is deliberately loose: rows come from the
// upstream API and no key is assumed to exist or have a stable type.

type OrderSummary struct {
	ID                string  `mapstructure:"id"`
	DisplayID         string  `mapstructure:"display_id"`
	Status            string  `mapstructure:"status"`
	PaymentStatus     string  `mapstructure:"payment_status"`
	FulfillmentStatus string  `mapstructure:"fulfillment_status"`
	Email             string  `mapstructure:"email"`
	CurrencyCode      string  `mapstructure:"currency_code"`
	Total             float64 `mapstructure:"total"`
	CreatedAt         string  `mapstructure:"created_at"`
}

type ProductSummary struct {
	ID        string `mapstructure:"id"`
	Title     string `mapstructure:"title"`
	Handle    string `mapstructure:"handle"`
	Status    string `mapstructure:"status"`
	Thumbnail string `mapstructure:"thumbnail"`
	CreatedAt string `mapstructure:"created_at"`
}

type CustomerSummary struct {
	ID        string `mapstructure:"id"`
	Email     string `mapstructure:"email"`
	FirstName string `mapstructure:"first_name"`
	LastName  string `mapstructure:"last_name"`
	CreatedAt string `mapstructure:"created_at"`
}

func numberToStringHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch f.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return fmt.Sprint(data), nil
		case reflect.Float32, reflect.Float64:
			return fmt.Sprintf("%v", data), nil
		}
		return data, nil
	}
}

func decode(row map[string]interface{}, out interface{}) error {
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       numberToStringHook(),
		Result:           out,
		TagName:          "mapstructure",
		ZeroFields:       true,
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return dec.Decode(row)
}

// DecodeOrder shapes an opaque row into an OrderSummary. Missing or
// unexpected fields decode to zero values, never errors.
func DecodeOrder(row map[string]interface{}) OrderSummary {
	var s OrderSummary
	if err := decode(row, &s); err != nil {
		return OrderSummary{}
	}
	return s
}

// DecodeProduct shapes an opaque row into a ProductSummary.
func DecodeProduct(row map[string]interface{}) ProductSummary {
	var s ProductSummary
	if err := decode(row, &s); err != nil {
		return ProductSummary{}
	}
	return s
}

// DecodeCustomer shapes an opaque row into a CustomerSummary.
func DecodeCustomer(row map[string]interface{}) CustomerSummary {
	var s CustomerSummary
	if err := decode(row, &s); err != nil {
		return CustomerSummary{}
	}
	return s
}
