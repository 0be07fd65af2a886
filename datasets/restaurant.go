package datasets

// Cuisine is the type of a restaurant
type Cuisine int

const (
	French Cuisine = iota
	Italian
	Thai
	Burger
)

func (c Cuisine) String() string {
	switch c {
	case French:
		return "French"
	case Italian:
		return "Italian"
	case Thai:
		return "Thai"
	case Burger:
		return "Burger"
	}

	return "unknown"
}

// NumConditions is the number of inputs given by Conditions.Inputs, including Bias.
const NumConditions int = 11

// Conditions describes a visit to a restaurant, from the restaurant-waiting problem of Russell &
// Norvig's "Artificial Intelligence: A Modern Approach". The question is whether or not to wait
// for a table.
type Conditions struct {
	WaitEstimate float64 // 0 to 1: 0-10, 10-30, 30-60, >60 minutes
	Type         Cuisine
	Hungry       bool
	Alternate    bool // there is an alternative nearby
	Bar          bool // there is a bar to wait in
	Raining      bool
	FriSat       bool
	Patrons      float64 // 0 to 1, how full the restaurant is
	Price        float64 // 0 to 1, how expensive it is
	Reservation  bool
}

func b(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// Inputs encodes the Conditions for a Network, in the order of the fields, with Type scaled to
// [0, 1] and Bias appended.
func (c Conditions) Inputs() []float64 {
	return []float64{
		c.WaitEstimate,
		float64(c.Type) / float64(Burger),
		b(c.Hungry),
		b(c.Alternate),
		b(c.Bar),
		b(c.Raining),
		b(c.FriSat),
		c.Patrons,
		c.Price,
		b(c.Reservation),
		Bias,
	}
}

// Example is one of the restaurant visits that a decision was made about.
type Example struct {
	Conditions
	WillWait bool
}

// values of WaitEstimate, Patrons and Price
const (
	wait0to10, wait10to30, wait30to60, waitOver60 = 0.0, 1.0 / 3, 2.0 / 3, 1.0

	patronsNone, patronsSome, patronsFull = 0.0, 0.5, 1.0

	price1, price2, price3 = 0.0, 0.5, 1.0
)

// Examples returns the twelve training examples of the restaurant-waiting problem.
func Examples() []Example {
	return []Example{
		{Conditions{wait0to10, French, true, true, false, false, false, patronsSome, price3, true}, true},
		{Conditions{wait30to60, Thai, true, true, false, false, false, patronsFull, price1, false}, false},
		{Conditions{wait0to10, Burger, false, false, true, false, false, patronsSome, price1, false}, true},
		{Conditions{wait10to30, Thai, true, true, false, true, true, patronsFull, price1, false}, true},
		{Conditions{waitOver60, French, false, true, false, false, true, patronsFull, price3, true}, false},
		{Conditions{wait0to10, Italian, true, false, true, true, false, patronsSome, price2, true}, true},
		{Conditions{wait0to10, Burger, false, false, true, true, false, patronsNone, price1, false}, false},
		{Conditions{wait0to10, Thai, true, false, false, true, false, patronsSome, price2, true}, true},
		{Conditions{waitOver60, Burger, false, false, true, true, true, patronsFull, price1, false}, false},
		{Conditions{wait10to30, Italian, true, true, true, false, true, patronsFull, price3, true}, false},
		{Conditions{wait0to10, Thai, false, false, false, false, false, patronsNone, price1, false}, false},
		{Conditions{wait30to60, Burger, true, true, true, false, true, patronsFull, price1, false}, true},
	}
}

// Restaurant returns Examples as a dataset, with a single target of 1 if the decision was to
// wait.
func Restaurant() [][][]float64 {
	ex := Examples()
	d := make([][][]float64, len(ex))
	for i, e := range ex {
		d[i] = [][]float64{e.Inputs(), {b(e.WillWait)}}
	}

	return d
}
