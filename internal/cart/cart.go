// Package cart maintains an ordered list of line items persisted as a
// single blob in a local store, mirroring a browser-side shopping cart.
package cart

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strconv"
)

// Item is one cart line. At most one entry exists per product; adding the
// same product again increments its quantity.
type Item struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is an in-memory ordered map (productId -> item) with explicit
// Load/Save at the store boundary. Single-writer, so no locking.
type Cart struct {
	store Store
	order []string
	items map[string]*Item
}

// Load reads the serialized cart from the store and rebuilds the ordered
// map. A missing blob means an empty cart.
func Load(store Store) (*Cart, error) {
	c := &Cart{
		store: store,
		items: make(map[string]*Item),
	}

	blob, ok, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !ok {
		return c, nil
	}

	var list []Item
	if err := json.Unmarshal(blob, &list); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}

	for i := range list {
		item := list[i]
		if _, seen := c.items[item.ProductID]; seen {
			// stored blobs never contain duplicates, but merge defensively
			c.items[item.ProductID].Quantity += item.Quantity
			continue
		}
		c.order = append(c.order, item.ProductID)
		c.items[item.ProductID] = &item
	}

	return c, nil
}

// Add puts a product into the cart, incrementing the quantity when the
// product is already present, then persists the whole cart. Returns the
// new total item count.
func (c *Cart) Add(productID, name string, price float64) (int, error) {
	if existing, ok := c.items[productID]; ok {
		existing.Quantity++
	} else {
		c.order = append(c.order, productID)
		c.items[productID] = &Item{
			ProductID: productID,
			Name:      name,
			Price:     price,
			Quantity:  1,
		}
	}

	if err := c.save(); err != nil {
		return 0, err
	}

	return c.Count(), nil
}

// Items returns the cart lines in insertion order
func (c *Cart) Items() []Item {
	list := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		list = append(list, *c.items[id])
	}
	return list
}

// Count sums the quantities across all entries
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// CountLabel formats the badge text, suppressing the zero value
func (c *Cart) CountLabel() string {
	n := c.Count()
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// Total is the grand total across all lines
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) save() error {
	blob, err := json.Marshal(c.Items())
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := c.store.Save(blob); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

var cartTmpl = template.Must(template.New("cart").Parse(`{{if .Empty}}<p class="cart-empty">Your cart is empty.</p>
<span class="cart-total">₹0</span>
{{else}}{{range .Rows}}<div class="cart-row"><span class="cart-name">{{.Name}}</span><span class="cart-qty">Qty: {{.Quantity}} x ₹{{.Price}}</span><span class="cart-subtotal">₹{{.Subtotal}}</span></div>
{{end}}<span class="cart-total">₹{{.Total}}</span>
{{end}}`))

type cartRow struct {
	Name     string
	Quantity int
	Price    string
	Subtotal string
}

type cartView struct {
	Empty bool
	Rows  []cartRow
	Total string
}

// Render writes one display row per entry in insertion order plus the
// formatted grand total; an empty cart renders the empty-state message
// and a zero total
func (c *Cart) Render(w io.Writer) error {
	view := cartView{Empty: len(c.order) == 0}

	if !view.Empty {
		for _, item := range c.Items() {
			subtotal := item.Price * float64(item.Quantity)
			view.Rows = append(view.Rows, cartRow{
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    strconv.FormatFloat(item.Price, 'f', -1, 64),
				Subtotal: fmt.Sprintf("%.2f", subtotal),
			})
		}
		view.Total = fmt.Sprintf("%.2f", c.Total())
	}

	return cartTmpl.Execute(w, view)
}
