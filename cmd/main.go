// carmaint tracks maintenance schedules for a handful of vehicles.
//
// Usage:
//
//	carmaint vehicle add "Honda Civic" --mileage 15000
//	carmaint item add "Honda Civic" "Oil Change" --miles 5000 --months 6
//	carmaint perform "Honda Civic" "Oil Change" --mileage 15000 --date 10/14/24
//	carmaint due
//	carmaint backup | carmaint restore
package main

import (
	"fmt"
	"os"
	"time"
)

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
