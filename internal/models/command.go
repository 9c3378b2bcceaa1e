package models

import "fmt"

type CommandKind int

const (
	CmdRefresh CommandKind = iota
	CmdAdd
	CmdEdit
	CmdDelete
	CmdCopy
	CmdBulkDelete
	CmdClearAll
	CmdSearch
	CmdSort
	CmdPerPage
	CmdGoToPage
	CmdToggle
	CmdToggleAll
)

var commandNames = map[CommandKind]string{
	CmdRefresh:    "refresh",
	CmdAdd:        "add",
	CmdEdit:       "edit",
	CmdDelete:     "delete",
	CmdCopy:       "copy",
	CmdBulkDelete: "bulk-delete",
	CmdClearAll:   "clear-all",
	CmdSearch:     "search",
	CmdSort:       "sort",
	CmdPerPage:    "per-page",
	CmdGoToPage:   "go-to-page",
	CmdToggle:     "toggle",
	CmdToggleAll:  "toggle-all",
}

func (k CommandKind) String() string {
	if n, ok := commandNames[k]; ok {
		return n
	}
	return fmt.Sprintf("command(%d)", int(k))
}

// PageMove is a relative page navigation.
type PageMove string

const (
	PageFirst PageMove = "first"
	PagePrev  PageMove = "prev"
	PageNext  PageMove = "next"
	PageLast  PageMove = "last"
)

// Command is a single user action. Only the fields relevant to Kind are read.
type Command struct {
	Kind CommandKind

	// CmdAdd uses Name, Email and Role.
	Name  string
	Email string
	Role  Role

	// CmdEdit, CmdDelete, CmdCopy and CmdToggle target ID.
	ID     string
	Fields RecordFields

	Query   string
	Sort    Sort
	PerPage int

	// CmdGoToPage uses Move when set, Page otherwise.
	Page int
	Move PageMove

	// CmdToggle and CmdToggleAll.
	Checked bool

	// CmdBulkDelete and CmdClearAll are refused unless Confirmed.
	Confirmed bool
}
