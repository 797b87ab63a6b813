package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/taskdesk/internal/finance"
)

func main() {
	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Println()
		fmt.Println("interest calculator")
		fmt.Println("  1) simple interest")
		fmt.Println("  2) compound interest")
		fmt.Println("  3) recurring deposit (annuity)")
		fmt.Println("  q) quit")

		choice, err := prompt(in, "choice")
		if err != nil {
			return
		}

		switch strings.ToLower(choice) {
		case "1":
			runSimple(in)
		case "2":
			runCompound(in)
		case "3":
			runAnnuity(in)
		case "q", "quit":
			return
		default:
			fmt.Println("unknown choice, enter 1, 2, 3 or q")
		}
	}
}

func runSimple(in *bufio.Reader) {
	principal, ok := promptFloat(in, "principal")
	if !ok {
		return
	}
	rate, ok := promptFloat(in, "annual rate (%)")
	if !ok {
		return
	}
	years, ok := promptFloat(in, "years")
	if !ok {
		return
	}

	amount, err := finance.SimpleAmount(principal, rate, years)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	printResult(principal, amount)
}

func runCompound(in *bufio.Reader) {
	principal, ok := promptFloat(in, "principal")
	if !ok {
		return
	}
	rate, ok := promptFloat(in, "annual rate (%)")
	if !ok {
		return
	}
	periods, ok := promptInt(in, "compounding periods per year")
	if !ok {
		return
	}
	years, ok := promptFloat(in, "years")
	if !ok {
		return
	}

	amount, err := finance.CompoundAmount(principal, rate, periods, years)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	printResult(principal, amount)
}

func runAnnuity(in *bufio.Reader) {
	payment, ok := promptFloat(in, "payment per period")
	if !ok {
		return
	}
	rate, ok := promptFloat(in, "annual rate (%)")
	if !ok {
		return
	}
	periods, ok := promptInt(in, "payments per year")
	if !ok {
		return
	}
	years, ok := promptFloat(in, "years")
	if !ok {
		return
	}

	amount, err := finance.AnnuityAmount(payment, rate, periods, years)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	invested := payment * float64(periods) * years
	printResult(invested, amount)
}

func printResult(invested, amount float64) {
	fmt.Printf("maturity amount: %.2f\n", amount)
	fmt.Printf("interest earned: %.2f\n", amount-invested)
}

func prompt(in *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s> ", label)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptFloat(in *bufio.Reader, label string) (float64, bool) {
	raw, err := prompt(in, label)
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Printf("not a number: %s\n", raw)
		return 0, false
	}
	return v, true
}

func promptInt(in *bufio.Reader, label string) (int, bool) {
	raw, err := prompt(in, label)
	if err != nil {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("not a whole number: %s\n", raw)
		return 0, false
	}
	return v, true
}
