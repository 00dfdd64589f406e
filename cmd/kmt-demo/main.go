// Command kmt-demo is a small worked example showing a table, a
// live filtered view on top of it, and a round trip through tableio.
// It exercises the library from the outside; it is not part of the
// package API.
package main

import (
	"log"
	"os"
	"time"

	"kmt/column"
	"kmt/csvexport"
	"kmt/table"
	"kmt/tableio"
	"kmt/value"
	"kmt/view"
)

func testCycles(n int, label string, cb func()) {
	before := time.Now()
	for i := 0; i < n; i++ {
		cb()
	}
	log.Printf(" %s : %v for %d cycles", label, time.Since(before), n)
}

func main() {
	students, err := table.New("students", []column.Meta{
		{Name: "name", Type: value.KindStr},
		{Name: "id", Type: value.KindInt32},
	}, table.Asc)
	if err != nil {
		log.Fatalf("table.New: %v", err)
	}

	rows := []struct {
		name string
		id   int32
	}{
		{"Keshav", 1}, {"Hemant", 2}, {"Hema", 3}, {"Hema", 4},
		{"Aarati", 6}, {"Chhatrapal", 5}, {"Ketan", 8}, {"Bhupendra", 7},
		{"Teman", 9}, {"Janaki", 10},
	}
	for _, r := range rows {
		if _, err := students.InsertRow([]value.Value{value.Str(r.name), value.Int32(r.id)}); err != nil {
			log.Fatalf("InsertRow(%s): %v", r.name, err)
		}
	}

	log.Printf("students by name, logical order:")
	for i := 0; i < students.RowCount(); i++ {
		log.Printf("  %v %v", students.CellAt(i, 0), students.CellAt(i, 1))
	}

	oddIDs, err := view.New(students, []int{0, 1}, "isOdd($id)", 1, table.Asc)
	if err != nil {
		log.Fatalf("view.New: %v", err)
	}
	defer oddIDs.Close()

	log.Printf("odd-id view:")
	for i := 0; i < oddIDs.RowCount(); i++ {
		log.Printf("  %v %v", oddIDs.CellAt(i, 0), oddIDs.CellAt(i, 1))
	}

	dir, err := os.MkdirTemp("", "kmt-demo-*")
	if err != nil {
		log.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(dir)

	if err := tableio.WriteTableCompressed(dir, students); err != nil {
		log.Fatalf("WriteTableCompressed: %v", err)
	}
	reloaded, err := tableio.ReadTableFrom(dir)
	if err != nil {
		log.Fatalf("ReadTableFrom: %v", err)
	}
	log.Printf("reloaded %q: %d rows", reloaded.Name(), reloaded.RowCount())

	if err := csvexport.WriteCSV(os.Stdout, reloaded, ','); err != nil {
		log.Fatalf("WriteCSV: %v", err)
	}

	testCycles(100000, "CellAt(0,0)", func() {
		_ = students.CellAt(0, 0)
	})
}
