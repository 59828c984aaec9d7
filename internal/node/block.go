package node

// Block is a structural unit of a Markdown document. The set of variants is
// closed; every implementation lives in this file.
type Block interface {
	blockNode()
}

// Blockquote holds quoted child blocks.
type Blockquote struct {
	Children []Block
}

// BulletedList is an unordered list.
type BulletedList struct {
	Tight bool
	Items []ListItem
}

// NumberedList is an ordered list starting at Start.
type NumberedList struct {
	Tight bool
	Start int
	Items []ListItem
}

// TaskList is a list whose items carry a completion checkbox.
type TaskList struct {
	Tight bool
	Items []TaskListItem
}

// CodeBlock is fenced or indented code. FenceInfo is empty when unknown.
type CodeBlock struct {
	FenceInfo string
	Content   string
}

// HTMLBlock holds raw markup the structural parser could not interpret.
// It never reaches a surface: the renderer replaces it with an interpreted
// block first.
type HTMLBlock struct {
	Content string
}

type Paragraph struct {
	Content []Inline
}

// Heading is a section heading. Use NewHeading to get a clamped level.
type Heading struct {
	Level   int
	Content []Inline
}

// Table is a grid of rows. Rows[0] is the header row when the source had one.
// Cell counts per row are not forced to match len(Alignments).
type Table struct {
	Alignments []Alignment
	Rows       []Row
}

type ThematicBreak struct{}

func (Blockquote) blockNode()    {}
func (BulletedList) blockNode()  {}
func (NumberedList) blockNode()  {}
func (TaskList) blockNode()      {}
func (CodeBlock) blockNode()     {}
func (HTMLBlock) blockNode()     {}
func (Paragraph) blockNode()     {}
func (Heading) blockNode()       {}
func (Table) blockNode()         {}
func (ThematicBreak) blockNode() {}

// ListItem is an item of a bulleted or numbered list.
type ListItem struct {
	Children []Block
}

// TaskListItem is an item of a task list.
type TaskListItem struct {
	Completed bool
	Children  []Block
}

// Alignment is the horizontal alignment of a table column.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "none"
	}
}

type Row struct {
	Cells []Cell
}

type Cell struct {
	Content []Inline
}

// NewHeading builds a heading with level clamped to 1..6.
func NewHeading(level int, content []Inline) Heading {
	return Heading{Level: ClampLevel(level), Content: content}
}

// ClampLevel limits a heading level to the 1..6 range.
func ClampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

// ParagraphFromString builds a paragraph with a single text run. One trailing
// newline is dropped.
func ParagraphFromString(s string) Paragraph {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return Paragraph{Content: []Inline{Text{Value: s}}}
}

// Kind returns a short lowercase name of the block variant, used for logging
// and metrics labels.
func Kind(b Block) string {
	switch b.(type) {
	case Blockquote:
		return "blockquote"
	case BulletedList:
		return "bulleted_list"
	case NumberedList:
		return "numbered_list"
	case TaskList:
		return "task_list"
	case CodeBlock:
		return "code_block"
	case HTMLBlock:
		return "html_block"
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Table:
		return "table"
	case ThematicBreak:
		return "thematic_break"
	default:
		return "unknown"
	}
}
