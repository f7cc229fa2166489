// officecli is an interactive terminal client for checking, editing and
// cancelling office space bookings against the booking service.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/firstoffice/service-office/internal/client"
	"github.com/firstoffice/service-office/internal/workflow"
	"github.com/spf13/pflag"
)

func main() {
	var (
		apiBaseURL   = pflag.String("api-base-url", "http://localhost:8000", "base URL of the booking service")
		apiKey       = pflag.String("api-key", "", "API key sent with every request")
		assetBaseURL = pflag.String("asset-base-url", "http://localhost:8000/storage/", "base URL for resolving asset paths")
	)
	pflag.Parse()

	if *apiKey == "" {
		*apiKey = os.Getenv("OFFICE_API_KEY")
	}
	if *apiKey == "" {
		fmt.Fprintln(os.Stderr, "an API key is required (--api-key or OFFICE_API_KEY)")
		os.Exit(1)
	}

	api := client.New(client.Config{
		APIBaseURL:   *apiBaseURL,
		APIKey:       *apiKey,
		AssetBaseURL: *assetBaseURL,
	})

	in := bufio.NewScanner(os.Stdin)
	console := &consoleUI{in: in, out: os.Stdout}
	flow := workflow.NewCheckBooking(api, api, console, console)

	fmt.Println("office booking — type 'help' for commands")
	repl(flow, console)
}

func repl(flow *workflow.CheckBooking, console *consoleUI) {
	ctx := context.Background()
	for {
		fmt.Print("> ")
		line, ok := console.readLine()
		if !ok {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		switch cmd {
		case "check":
			runCheck(ctx, flow, console)
		case "show":
			printView(flow)
		case "edit":
			runEdit(ctx, flow, console)
		case "cancel":
			if err := flow.CancelBooking(ctx); err != nil {
				fmt.Println(flow.ErrorMessage())
			}
		case "reset":
			flow.Reset()
		case "help":
			fmt.Println("commands: check, show, edit, cancel, reset, quit")
		case "quit", "exit":
			return
		case "":
		default:
			fmt.Printf("unknown command %q (arg %q); type 'help'\n", cmd, arg)
		}
	}
}

func runCheck(ctx context.Context, flow *workflow.CheckBooking, console *consoleUI) {
	form := client.LookupForm{
		BookingTrxID: console.ask("Booking transaction ID: "),
		PhoneNumber:  console.ask("Phone number: "),
	}
	if err := flow.SubmitLookup(ctx, form); err != nil {
		fmt.Println(flow.ErrorMessage())
		return
	}
	for _, fe := range flow.FormErrors() {
		fmt.Printf("%s: %s\n", fe.Path, fe.Message)
	}
	printView(flow)
}

func runEdit(ctx context.Context, flow *workflow.CheckBooking, console *consoleUI) {
	if !flow.BeginEdit() {
		fmt.Println("nothing to edit; run 'check' first")
		return
	}
	draft := flow.EditingDraft()
	fields := []struct{ name, label, current string }{
		{"name", "Name", draft.Name},
		{"phone_number", "Phone number", draft.PhoneNumber},
		{"started_at", "Start date (YYYY-MM-DD)", draft.StartedAt},
	}
	for _, f := range fields {
		answer := console.ask(fmt.Sprintf("%s [%s]: ", f.label, f.current))
		if answer != "" {
			flow.EditField(f.name, answer)
		}
	}
	if !console.Confirm("Save changes?") {
		flow.DiscardEdit()
		return
	}
	if err := flow.SaveEdit(ctx); err != nil {
		fmt.Println(flow.ErrorMessage())
	}
}

func printView(flow *workflow.CheckBooking) {
	view, ok := flow.View()
	if !ok {
		if msg := flow.ErrorMessage(); msg != "" {
			fmt.Println(msg)
		}
		return
	}
	fmt.Printf("Booking       %s\n", view.BookingTrxID)
	fmt.Printf("Name          %s\n", view.Name)
	fmt.Printf("Phone         %s\n", view.PhoneNumber)
	fmt.Printf("Office        %s, %s\n", view.OfficeName, view.CityName)
	fmt.Printf("Thumbnail     %s\n", view.ThumbnailURL)
	fmt.Printf("Period        %s to %s (%s)\n", view.StartedAt, view.EndedAt, view.Duration)
	fmt.Printf("Total         Rp %s\n", view.TotalAmount)
	fmt.Printf("Payment       %s\n", view.PaymentStatus)
	if msg := flow.ErrorMessage(); msg != "" {
		fmt.Println(msg)
	}
}

// consoleUI implements workflow.Prompter and workflow.Navigator over
// stdin/stdout.
type consoleUI struct {
	in  *bufio.Scanner
	out *os.File
}

func (c *consoleUI) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *consoleUI) ask(prompt string) string {
	fmt.Fprint(c.out, prompt)
	line, _ := c.readLine()
	return strings.TrimSpace(line)
}

func (c *consoleUI) Confirm(message string) bool {
	answer := c.ask(message + " [y/N] ")
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func (c *consoleUI) Alert(message string) {
	fmt.Fprintln(c.out, message)
}

func (c *consoleUI) NavigateHome() {
	fmt.Fprintln(c.out, "Returning to home.")
}
