package linecharts

// Entry is one data point. Index is the ordinal position, Key the raw x value
// used in numeric and temporal mode.
type Entry struct {
	Index int
	Value float64
	Key   string
}

// Series is a read-only sequence of entries ordered by Index.
type Series interface {
	Len() int
	At(int) Entry
}

type AxisSide int

const (
	AxisLeft AxisSide = iota
	AxisRight
)

func (a AxisSide) String() string {
	if a == AxisRight {
		return "right"
	}
	return "left"
}

// LineSeries is a Series that can be drawn by LineRenderer.
type LineSeries interface {
	Series
	Line() *LineStyle
	Axis() AxisSide
	Visible() bool
}

type DataSet struct {
	Label   string
	Entries []Entry
	Style   LineStyle
	Side    AxisSide
	Hidden  bool
}

func NewDataSet(label string, entries []Entry) *DataSet {
	return &DataSet{
		Label:   label,
		Entries: entries,
		Style:   DefaultLineStyle(),
	}
}

// FromValues builds entries indexed by position. Keys are left empty.
func FromValues(values ...float64) []Entry {
	es := make([]Entry, len(values))
	for i, v := range values {
		es[i] = Entry{Index: i, Value: v}
	}
	return es
}

// FromPairs builds entries from keys and values of the same length.
func FromPairs(keys []string, values []float64) []Entry {
	n := len(keys)
	if len(values) < n {
		n = len(values)
	}
	es := make([]Entry, n)
	for i := 0; i < n; i++ {
		es[i] = Entry{Index: i, Value: values[i], Key: keys[i]}
	}
	return es
}

func (d *DataSet) Len() int {
	return len(d.Entries)
}

func (d *DataSet) At(i int) Entry {
	return d.Entries[i]
}

func (d *DataSet) Line() *LineStyle {
	return &d.Style
}

func (d *DataSet) Axis() AxisSide {
	return d.Side
}

func (d *DataSet) Visible() bool {
	return !d.Hidden
}

// valueRange returns the min and max of the non NaN values of s.
func valueRange(s Series) (float64, float64, bool) {
	var (
		lo, hi float64
		found  bool
	)
	for i := 0; i < s.Len(); i++ {
		v := s.At(i).Value
		if isNaN(v) {
			continue
		}
		if !found {
			lo, hi, found = v, v, true
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi, found
}
