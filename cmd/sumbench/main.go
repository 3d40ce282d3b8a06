// Command sumbench compares iterative and closed-form summation of 1..N by
// wall-clock time.
package main

import (
	"context"
	"os"

	"github.com/agbru/sumbench/internal/app"
)

func main() {
	os.Exit(app.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
