package session_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/storefront-simulator/internal/auth"
	"github.com/rogerio-castellano/storefront-simulator/internal/config"
	"github.com/rogerio-castellano/storefront-simulator/internal/fixtures"
	"github.com/rogerio-castellano/storefront-simulator/internal/repo"
	"github.com/rogerio-castellano/storefront-simulator/internal/session"
)

var testConfig = config.Config{
	MaxLoginAttempts: 3,
	CurrencySymbol:   "R$",
	TokenTTL:         15 * time.Minute,
	TokenSecret:      "test-secret",
}

// runSession executes the controller against scripted input lines and
// returns everything it wrote.
func runSession(t *testing.T, script []string) string {
	t.Helper()

	data, err := fixtures.Load()
	if err != nil {
		t.Fatalf("loading fixtures: %v", err)
	}

	catalog := repo.NewInMemoryCatalogRepository(data.Products, data.Categories)
	users := repo.NewInMemoryUserRepository(data.Users)
	authService := auth.NewService(users, []byte(testConfig.TokenSecret), testConfig.TokenTTL)

	var out bytes.Buffer
	controller := session.NewController(catalog, authService, testConfig,
		strings.NewReader(strings.Join(script, "\n")+"\n"), &out)

	if err := controller.Run(); err != nil {
		t.Fatalf("session ended with error: %v", err)
	}
	return out.String()
}

func assertContains(t *testing.T, output string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRun_FullJourney(t *testing.T) {
	output := runSession(t, []string{
		"wrong@email.com", "wrongpassword",
		"angel_y_davis@example.com", "password123",
		"1",       // categories
		"2",       // full catalog
		"3", "2",  // filter by Electronics
		"4", "6",  // add Redmi
		"4", "6",  // add Redmi again
		"4", "5",  // add the out-of-stock t-shirt
		"4", "99", // add an unknown product
		"5", "6",  // remove one Redmi unit
		"6", "15", // delete an item that was never added
		"7",       // cart details
		"8", "y",  // checkout, confirmed
	})

	assertContains(t, output,
		"--- Attempt 1 of 3 ---",
		"❌ Invalid email or password.",
		"✅ Login successful!",
		"👋 Welcome, Angela Yvonne Davis!",
		"[ID: 2] Electronics",
		"--- 📜 Product Catalog 📜 ---",
		"(Out of Stock)",
		"🛒 Added 1x Redmi Note 14 Pro+ 5G to the cart.",
		`"Polo Wear Navy Blue T-Shirt" is currently out of stock`,
		"Product not found.",
		"🛒 Removed one unit from the cart.",
		"Item not found in cart.",
		"> Redmi Note 14 Pro+ 5G (Qty: 1) - Subtotal: R$2899.00",
		"--- Total: R$2899.00 ---",
		"✅ Order confirmed. Thank you for shopping with us!",
	)
}

func TestRun_StockCeilingThroughMenu(t *testing.T) {
	// Product 8 has stock 8: the ninth add reports the ceiling.
	script := []string{"angel_y_davis@example.com", "password123"}
	for i := 0; i < 9; i++ {
		script = append(script, "4", "8")
	}
	script = append(script, "7", "0")

	output := runSession(t, script)

	assertContains(t, output,
		`not enough stock for "Lenovo Legion 5i Gaming Notebook": the maximum of 8 is already in the cart`,
		"> Lenovo Legion 5i Gaming Notebook (Qty: 8)",
	)
}

func TestRun_MaxLoginAttemptsExhausted(t *testing.T) {
	output := runSession(t, []string{
		"wrong@email.com", "wrongpassword",
		"wrong@email.com", "wrongpassword",
		"wrong@email.com", "wrongpassword",
	})

	assertContains(t, output,
		"--- Attempt 3 of 3 ---",
		"Maximum login attempts reached. Exiting application.",
	)
	if strings.Contains(output, "Welcome,") {
		t.Error("expected no session after exhausted attempts")
	}
}

func TestRun_CheckoutDeclinedKeepsCart(t *testing.T) {
	output := runSession(t, []string{
		"angel_y_davis@example.com", "password123",
		"4", "15", // add the chess set
		"8", "n",  // checkout, declined
		"7",       // the cart is still there
		"0",
	})

	assertContains(t, output,
		"Checkout cancelled.",
		"> Dal Rossi Crystal Chess Set (Qty: 1)",
	)
}

func TestRun_EndOfInputEndsSession(t *testing.T) {
	data, err := fixtures.Load()
	if err != nil {
		t.Fatalf("loading fixtures: %v", err)
	}

	catalog := repo.NewInMemoryCatalogRepository(data.Products, data.Categories)
	users := repo.NewInMemoryUserRepository(data.Users)
	authService := auth.NewService(users, []byte(testConfig.TokenSecret), testConfig.TokenTTL)

	// The script logs in and browses once but never picks Exit; the session
	// must still wind down when the input runs out.
	var out bytes.Buffer
	controller := session.NewController(catalog, authService, testConfig,
		strings.NewReader("angel_y_davis@example.com\npassword123\n2\n"), &out)

	done := make(chan error, 1)
	go func() {
		done <- controller.Run()
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("session ended with error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("session still running after input was exhausted")
	}

	assertContains(t, out.String(),
		"✅ Login successful!",
		"--- 📜 Product Catalog 📜 ---",
		"Come back soon! =)",
	)
}

func TestRun_EndOfInputDuringLogin(t *testing.T) {
	output := runSession(t, []string{"angel_y_davis@example.com"})

	if strings.Contains(output, "Maximum login attempts reached") {
		t.Error("expected end of input not to count as exhausted attempts")
	}
	if strings.Contains(output, "Welcome,") {
		t.Error("expected no session without completed credentials")
	}
}

func TestRun_CheckoutOnEmptyCart(t *testing.T) {
	output := runSession(t, []string{
		"angel_y_davis@example.com", "password123",
		"8",
		"0",
	})

	assertContains(t, output, "Your cart is empty. Add something before checking out.")
}
