package mem

// Kind is the kind of a bus transaction.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	READ       = Kind(0) // read
	WRITE      = Kind(1) // write
	READ_HALF  = Kind(2) // read-half
	WRITE_HALF = Kind(3) // write-half
	READ_BYTE  = Kind(4) // read-byte
	WRITE_BYTE = Kind(5) // write-byte
)

// Size returns the access width in bytes.
func (kind Kind) Size() int {
	switch kind {
	case READ_HALF, WRITE_HALF:
		return 2
	case READ_BYTE, WRITE_BYTE:
		return 1
	}
	return 4
}

// IsWrite reports whether the transaction stores Value.
func (kind Kind) IsWrite() bool {
	return kind == WRITE || kind == WRITE_HALF || kind == WRITE_BYTE
}

// Transaction is a single request on the bus.
type Transaction struct {
	Kind    Kind
	Address uint32
	Value   uint32
}

// Response answers a Transaction. Data is valid for reads only.
type Response struct {
	Data uint32
	Err  error
}

// Port services accesses that bypass the transaction slot: instruction
// fetch, and the direct reads of the system call handlers.
type Port interface {
	Fetch(address uint32) (word uint32, err error)
	Read(address uint32, size int) (value uint32, err error)
}

// Bus is a single-slot mailbox between the CPU and Memory. At most one
// transaction is in flight: a request may only be issued once the previous
// response has been consumed.
type Bus struct {
	Port Port

	request  *Transaction
	response *Response
}

// Request issues a transaction, failing with ErrBusBusy while another is
// outstanding.
func (bus *Bus) Request(tx Transaction) (err error) {
	if bus.request != nil || bus.response != nil {
		err = ErrBusBusy
		return
	}
	bus.request = &tx
	return
}

// Take removes the pending request, if any.
func (bus *Bus) Take() (tx Transaction, ok bool) {
	if bus.request == nil {
		return
	}
	tx, ok = *bus.request, true
	bus.request = nil
	return
}

// Respond posts the response of the taken request.
func (bus *Bus) Respond(resp Response) {
	bus.response = &resp
}

// Response consumes the posted response, if any.
func (bus *Bus) Response() (resp Response, ok bool) {
	if bus.response == nil {
		return
	}
	resp, ok = *bus.response, true
	bus.response = nil
	return
}

// Idle reports whether no transaction is outstanding.
func (bus *Bus) Idle() bool {
	return bus.request == nil && bus.response == nil
}

// Fetch reads an instruction word through the port.
func (bus *Bus) Fetch(address uint32) (word uint32, err error) {
	return bus.Port.Fetch(address)
}

// Peek reads size bytes through the port, outside of the transaction slot.
func (bus *Bus) Peek(address uint32, size int) (value uint32, err error) {
	return bus.Port.Read(address, size)
}

// Reset drops any outstanding transaction.
func (bus *Bus) Reset() {
	bus.request = nil
	bus.response = nil
}
