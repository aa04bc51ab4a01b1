package csvfile

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"
	"sync"

	"warehouse/internal/core/domain/model/request"
)

// Level is one row of the final report.
type Level struct {
	Location string
	Count    int
}

// WriteFinalReport writes one location,count line per level, in the order
// given. Levels without a location are skipped.
func WriteFinalReport(w io.Writer, levels []Level) error {
	bw := bufio.NewWriter(w)
	for _, l := range levels {
		if l.Location == "" {
			continue
		}
		if _, err := bw.WriteString(l.Location + "," + strconv.Itoa(l.Count) + "\r\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// OrderLog appends the orders of each loaded request to w. It implements
// ports.CompletedOrderSink.
type OrderLog struct {
	mu sync.Mutex
	cw *csv.Writer
}

func NewOrderLog(w io.Writer) *OrderLog {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return &OrderLog{cw: cw}
}

// Append writes one colour,model line per order of pr, in request order.
func (l *OrderLog) Append(pr *request.PickingRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, o := range pr.Orders() {
		if err := l.cw.Write([]string{o.Color(), o.Model()}); err != nil {
			return err
		}
	}
	l.cw.Flush()
	return l.cw.Error()
}
