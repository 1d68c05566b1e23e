package ngoctham

// GoldPrice describes one quoted gold product from the price board.
type GoldPrice struct {
	GoldType  string // ex: Nhẫn 999.9
	BuyPrice  int64  // ex: 11000000
	SellPrice int64  // ex: 11200000
}

// Board is one decoded price-board response.
type Board struct {
	// Prices holds the quotes whose label is in the configured allow-list,
	// in the order the feed listed them.
	Prices []GoldPrice
	// SeenTypes holds every distinct label present in the response, in order.
	// Used to diagnose upstream label changes when nothing matched.
	SeenTypes []string
}

// NetworkError reports a failed round trip to the price-board endpoint:
// timeout, connection failure or an unexpected status code.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "price board request: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// ResponseFormatError reports a response body that could not be decoded as a
// price board.
type ResponseFormatError struct {
	Err error
}

func (e *ResponseFormatError) Error() string { return "price board response: " + e.Err.Error() }
func (e *ResponseFormatError) Unwrap() error { return e.Err }
