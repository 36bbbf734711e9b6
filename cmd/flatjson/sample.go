package main

import "github.com/ehsanranjbar/flatjson/value"

// sample is flattened when no input document is given.
var sample = value.Object{
	{Key: "id", Value: 1},
	{Key: "user", Value: value.Object{
		{Key: "name", Value: "John Doe"},
		{Key: "address", Value: value.Object{
			{Key: "street", Value: "123 Main St"},
			{Key: "city", Value: "Boston"},
			{Key: "country", Value: value.Object{
				{Key: "code", Value: "US"},
				{Key: "name", Value: "United States"},
			}},
		}},
		{Key: "orders", Value: []any{
			value.Object{
				{Key: "orderId", Value: "A1"},
				{Key: "items", Value: []any{
					value.Object{{Key: "product", Value: "Book"}, {Key: "price", Value: 29.99}},
					value.Object{{Key: "product", Value: "Pen"}, {Key: "price", Value: 5.99}},
				}},
			},
		}},
	}},
}
