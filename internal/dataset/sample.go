package dataset

import "github.com/kowusu01/LinqGrouping/internal/types"

// SampleSource is the source name of the built-in dataset.
const SampleSource = "sample"

// Sample returns the built-in dataset: nine customers, three orders and
// eleven line items. Each call returns fresh slices.
//
// The "Diary" category on the Egg line item is part of the data and is kept
// as its own category, separate from "Dairy".
func Sample() *types.Dataset {
	return &types.Dataset{
		Source: SampleSource,
		Customers: []types.Customer{
			{CustomerID: 1, Name: "Bob Lesman", City: "Chicago"},
			{CustomerID: 2, Name: "Joe Stevens", City: "Chicago"},
			{CustomerID: 3, Name: "Merry Smith", City: "Chicago"},
			{CustomerID: 4, Name: "Sue Lin", City: "New York"},
			{CustomerID: 5, Name: "Jose Gonzalez", City: "New York"},
			{CustomerID: 6, Name: "Nathan Jones", City: "New York"},
			{CustomerID: 7, Name: "Jane Doe", City: "Seattle"},
			{CustomerID: 8, Name: "Sammy Adams", City: "Seattle"},
			{CustomerID: 9, Name: "Ed Wards", City: "Seattle"},
		},
		Orders: []types.Order{
			{OrderID: 1, CustomerID: 1},
			{OrderID: 2, CustomerID: 4},
			{OrderID: 3, CustomerID: 6},
		},
		LineItems: []types.LineItem{
			{OrderID: 1, Item: "Onion", Category: "Vegetable"},
			{OrderID: 1, Item: "Apple", Category: "Fruit"},
			{OrderID: 1, Item: "Orange", Category: "Fruit"},
			{OrderID: 1, Item: "Banana", Category: "Fruit"},

			{OrderID: 2, Item: "Milk", Category: "Dairy"},
			{OrderID: 2, Item: "Chicken", Category: "Meat"},
			{OrderID: 2, Item: "Orange", Category: "Fruit"},

			{OrderID: 3, Item: "Lettuce", Category: "Vegetable"},
			{OrderID: 3, Item: "Papaya", Category: "Fruit"},
			{OrderID: 3, Item: "Egg", Category: "Diary"},
			{OrderID: 3, Item: "Beef", Category: "Meat"},
		},
	}
}
