package formaters

import (
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/objectsync/objectsync/pkg/contracts/istore"
	"github.com/objectsync/objectsync/pkg/objects"
	"github.com/rodaine/table"
)

func Objects(objs []*objects.Object) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Class", "Id", "Fields", "Dirty", "Updated")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for _, obj := range objs {
		tbl.AddRow(obj.ClassName, obj.ID, len(obj.State()), obj.Dirty(), obj.Updated.Format(time.RFC3339))
	}

	tbl.Print()
}

func Object(obj *objects.Object) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Field", "Value")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	state := obj.State()

	fields := make([]string, 0, len(state))
	for field := range state {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	tbl.AddRow("objectId", obj.ID)

	for _, field := range fields {
		tbl.AddRow(field, fmt.Sprintf("%v", state[field]))
	}

	tbl.Print()
}

func Snapshot(snapshot *istore.Snapshot) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Class", "Id", "Current")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	tbl.AddRow(snapshot.ClassName, snapshot.ObjectID, snapshot.Current)

	tbl.Print()
}
