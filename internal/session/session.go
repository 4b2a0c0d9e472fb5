// Package session drives the interactive storefront loop: login, menu
// dispatch, catalog browsing, cart mutation, and checkout confirmation. It
// is sequencing glue over the catalog, cart, and auth packages; every domain
// decision lives in those packages, and every condition they signal is
// rendered here as a message instead of a crash.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/storefront-simulator/internal/auth"
	"github.com/rogerio-castellano/storefront-simulator/internal/cart"
	"github.com/rogerio-castellano/storefront-simulator/internal/config"
	"github.com/rogerio-castellano/storefront-simulator/internal/models"
	"github.com/rogerio-castellano/storefront-simulator/internal/repo"
)

// Controller runs one interactive session over an injected reader/writer
// pair, so the whole loop is scriptable in tests.
type Controller struct {
	catalog repo.CatalogRepository
	auth    *auth.Service
	cfg     config.Config
	in      *bufio.Scanner
	out     io.Writer
}

func NewController(catalog repo.CatalogRepository, authSvc *auth.Service, cfg config.Config, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		catalog: catalog,
		auth:    authSvc,
		cfg:     cfg,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run executes the full session: bounded login attempts, then the menu loop
// until checkout, exit, or end of input. The cart lives here as a local
// value threaded through the cart operations, never as shared state.
func (c *Controller) Run() error {
	user, token, ok := c.login()
	if !ok {
		return nil
	}

	sessionID := uuid.New()
	fmt.Fprintf(c.out, "\n👋 Welcome, %s! (session %s)\n", user.Name, sessionID)

	userCart := cart.Cart{}
	for {
		choice, ok := c.prompt(menuText)
		if !ok {
			fmt.Fprintln(c.out, "\nCome back soon! =)")
			return nil
		}
		switch choice {
		case "1":
			c.showCategories()
		case "2":
			c.showCatalog(c.catalog.GetAll())
		case "3":
			c.filterCatalog()
		case "4":
			userCart = c.addToCart(userCart)
		case "5":
			userCart = c.removeFromCart(userCart)
		case "6":
			userCart = c.deleteFromCart(userCart)
		case "7":
			c.showCartDetails(user.Name, userCart)
		case "8":
			done := false
			userCart, done = c.checkout(user.Name, token, userCart)
			if done {
				return nil
			}
		case "0":
			fmt.Fprintln(c.out, "\nCome back soon! =)")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}
	}
}

const menuText = `
--- 🛍️  Main Menu 🛍️  ---
1 - Show categories
2 - Show catalog
3 - Filter catalog by category
4 - Add item to cart
5 - Remove one unit from cart
6 - Delete item from cart
7 - Show cart details
8 - Checkout
0 - Exit
Choose an option: `

func (c *Controller) login() (models.User, string, bool) {
	fmt.Fprintln(c.out, "\n🛍️  Welcome to the store! 🛍️")
	fmt.Fprintln(c.out, "Please log in to continue.")

	for attempt := 1; attempt <= c.cfg.MaxLoginAttempts; attempt++ {
		fmt.Fprintf(c.out, "\n--- Attempt %d of %d ---\n", attempt, c.cfg.MaxLoginAttempts)
		email, ok := c.prompt("Enter your email: ")
		if !ok {
			return models.User{}, "", false
		}
		password, ok := c.prompt("Enter your password: ")
		if !ok {
			return models.User{}, "", false
		}

		user, token, err := c.auth.Login(email, password)
		switch {
		case err == nil:
			fmt.Fprintln(c.out, "✅ Login successful!")
			return user, token, true
		case errors.Is(err, auth.ErrTooManyAttempts):
			fmt.Fprintln(c.out, "❌ Too many attempts. Wait a moment and try again.")
		default:
			fmt.Fprintln(c.out, "❌ Invalid email or password.")
		}
	}

	fmt.Fprintln(c.out, "\nMaximum login attempts reached. Exiting application.")
	fmt.Fprintln(c.out, "Come back soon! =)")
	return models.User{}, "", false
}

func (c *Controller) showCategories() {
	fmt.Fprintln(c.out, "\n--- 🗂️  Categories 🗂️  ---")
	for _, cat := range c.catalog.Categories() {
		fmt.Fprintf(c.out, "[ID: %d] %s\n", cat.ID, cat.Name)
	}
	fmt.Fprintln(c.out, "--------------------------")
}

func (c *Controller) showCatalog(products []models.Product) {
	fmt.Fprintln(c.out, "\n--- 📜 Product Catalog 📜 ---")
	for _, p := range products {
		if p.Stock > 0 {
			fmt.Fprintf(c.out, "[ID: %d] %s - %s%s\n", p.ID, p.Name, c.cfg.CurrencySymbol, p.Price.StringFixed(2))
		} else {
			fmt.Fprintf(c.out, "[ID: %d] %s - (Out of Stock)\n", p.ID, p.Name)
		}
	}
	fmt.Fprintln(c.out, "-----------------------------")
}

func (c *Controller) filterCatalog() {
	categoryID, ok := c.promptInt("Enter a category ID (0 for all): ")
	if !ok {
		return
	}
	c.showCatalog(c.catalog.FilterByCategory(categoryID))
}

func (c *Controller) addToCart(userCart cart.Cart) cart.Cart {
	product, ok := c.promptProduct()
	if !ok {
		return userCart
	}

	next, err := cart.AddOneUnit(userCart, product)
	if err != nil {
		fmt.Fprintf(c.out, "❌ Sorry! %v.\n", err)
		return userCart
	}

	fmt.Fprintf(c.out, "🛒 Added 1x %s to the cart.\n", product.Name)
	return next
}

func (c *Controller) removeFromCart(userCart cart.Cart) cart.Cart {
	id, ok := c.promptInt("Enter the product ID: ")
	if !ok {
		return userCart
	}

	next, err := cart.RemoveOneUnit(userCart, id)
	if err != nil {
		fmt.Fprintln(c.out, "Item not found in cart.")
		return userCart
	}

	fmt.Fprintln(c.out, "🛒 Removed one unit from the cart.")
	return next
}

func (c *Controller) deleteFromCart(userCart cart.Cart) cart.Cart {
	id, ok := c.promptInt("Enter the product ID: ")
	if !ok {
		return userCart
	}

	next, err := cart.DeleteLine(userCart, id)
	if err != nil {
		fmt.Fprintln(c.out, "Item not found in cart.")
		return userCart
	}

	fmt.Fprintln(c.out, "🗑️ Item deleted from the cart.")
	return next
}

func (c *Controller) showCartDetails(userName string, userCart cart.Cart) {
	fmt.Fprintf(c.out, "\n--- %s's Cart Details ---\n", userName)
	if len(userCart) == 0 {
		fmt.Fprintln(c.out, "Your cart is empty.")
		return
	}

	for _, line := range cart.Summary(userCart) {
		fmt.Fprintf(c.out, "> %s (Qty: %d) - Subtotal: %s%s\n",
			line.Name, line.Quantity, c.cfg.CurrencySymbol, line.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(c.out, "\n--- Total: %s%s ---\n", c.cfg.CurrencySymbol, cart.Total(userCart).StringFixed(2))
}

// checkout renders the summary, re-validates the session token, and asks for
// confirmation. A confirmed checkout ends the session and discards the cart.
func (c *Controller) checkout(userName, token string, userCart cart.Cart) (cart.Cart, bool) {
	if len(userCart) == 0 {
		fmt.Fprintln(c.out, "Your cart is empty. Add something before checking out.")
		return userCart, false
	}

	if err := c.auth.ValidateToken(token); err != nil {
		fmt.Fprintln(c.out, "❌ Your session has expired. Please log in again.")
		return userCart, true
	}

	c.showCartDetails(userName, userCart)
	answer, ok := c.prompt("Confirm your order? (y/n): ")
	if !ok || strings.ToLower(answer) != "y" {
		fmt.Fprintln(c.out, "Checkout cancelled.")
		return userCart, false
	}

	fmt.Fprintln(c.out, "\n✅ Order confirmed. Thank you for shopping with us!")
	return cart.Cart{}, true
}

// prompt reads one input line. ok is false once the input is exhausted, so
// callers can tell end-of-input apart from a blank line and wind down
// instead of looping on empty reads.
func (c *Controller) prompt(message string) (string, bool) {
	fmt.Fprint(c.out, message)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Controller) promptInt(message string) (int, bool) {
	raw, ok := c.prompt(message)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid number.")
		return 0, false
	}
	return value, true
}

func (c *Controller) promptProduct() (models.Product, bool) {
	id, ok := c.promptInt("Enter the product ID: ")
	if !ok {
		return models.Product{}, false
	}

	product, err := c.catalog.GetByID(id)
	if err != nil {
		fmt.Fprintln(c.out, "Product not found.")
		return models.Product{}, false
	}
	return product, true
}
