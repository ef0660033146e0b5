package sheets

// Order is one row of the orders sheet as the web app returns it.
type Order struct {
	OrderID      int64  `json:"order_id"`
	Timestamp    string `json:"timestamp"`
	Name         string `json:"name"`
	Mobile       string `json:"mobile"`
	Items        string `json:"items"`
	PayableTotal int    `json:"payable_total"`
	Status       string `json:"status"`
}

// MenuItem is one row of the menu sheet.
type MenuItem struct {
	ItemName  string `json:"item_name"`
	Available bool   `json:"available"`
}

type listOrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

type listMenuResponse struct {
	Success bool       `json:"success"`
	Menu    []MenuItem `json:"menu"`
}

type createOrderResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"orderId"`
}

type ackResponse struct {
	Success bool `json:"success"`
}
