package pnl

// lot is a single open acquisition: the amount of base currency still held
// from one buy, and the proportional acquisition cost (price*amount + fee)
// still attributable to it. Invariant: amount > 0 while the lot is queued.
type lot struct {
	amount float64
	cost   float64
}

// lotQueue holds open lots in acquisition order, oldest first. It is owned
// by a single engine invocation and is never shared.
type lotQueue []lot

func (q lotQueue) empty() bool { return len(q) == 0 }

func (q *lotQueue) pushBack(l lot) { *q = append(*q, l) }

func (q *lotQueue) popFront() lot {
	l := (*q)[0]
	*q = (*q)[1:]
	return l
}

func (q *lotQueue) pushFront(l lot) { *q = append(lotQueue{l}, *q...) }

// consume removes amount units of base currency from the front of the queue
// and returns their FIFO cost basis. A lot larger than the remaining amount
// is split proportionally and its remainder is reinserted at the front,
// preserving order for subsequent sells.
//
// If the queue is exhausted before amount is covered, the returned cost
// basis reflects only the lots that were available. Selling more than the
// tracked lots cover is not an error here: the missing pre-history is a
// documented limitation of replaying a partial trade record.
func (q *lotQueue) consume(amount float64) (costBasis float64) {
	for amount > 0 && !q.empty() {
		l := q.popFront()
		if l.amount <= amount {
			costBasis += l.cost
			amount -= l.amount
			continue
		}
		partial := (l.cost / l.amount) * amount
		costBasis += partial
		q.pushFront(lot{amount: l.amount - amount, cost: l.cost - partial})
		amount = 0
	}
	return costBasis
}

// unrealized values the remaining lots against the given price and returns
// the total unrealized profit or loss.
func (q lotQueue) unrealized(price float64) float64 {
	var total float64
	for _, l := range q {
		total += (price - l.cost/l.amount) * l.amount
	}
	return total
}
