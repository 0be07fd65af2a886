package neuralnet

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// The text encoding is a sequence of whitespace-separated tokens. A Unit is its number of weights
// followed by each weight:
//	3 0.5 -1 2
// A Perceptron is its number of inputs and outputs, its number of output Units, then each Unit on
// its own line. A Multilayer is its number of inputs and outputs, its number of hidden and output
// Units, then each hidden Unit and each output Unit on their own lines.
//
// Activation functions are not part of the encoding; decoded Units are always Sigmoid.

// Encode writes the text encoding of the Unit to w, without a trailing newline.
func (u *Unit) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeUnit(bw, u)
	return bw.Flush()
}

func writeUnit(bw *bufio.Writer, u *Unit) {
	bw.WriteString(strconv.Itoa(len(u.weights)))
	for _, w := range u.weights {
		bw.WriteByte(' ')
		// shortest representation that parses back to the same float64
		bw.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
	}
}

func writeInts(bw *bufio.Writer, ns ...int) {
	for i, n := range ns {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(n))
	}
	bw.WriteByte('\n')
}

// Encode writes the text encoding of the Perceptron to w.
func (p *Perceptron) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeInts(bw, p.nInputs, len(p.units), len(p.units))
	for _, u := range p.units {
		writeUnit(bw, u)
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "Failed to write perceptron")
	}

	return nil
}

// Encode writes the text encoding of the Multilayer to w. The cached values from Evaluate are not
// included.
func (m *Multilayer) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeInts(bw, m.nInputs, len(m.output), len(m.hidden), len(m.output))
	for _, u := range m.hidden {
		writeUnit(bw, u)
		bw.WriteByte('\n')
	}
	for _, u := range m.output {
		writeUnit(bw, u)
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "Failed to write multilayer network")
	}

	return nil
}

// maxPrealloc bounds the capacity reserved for a count read from an encoding
const maxPrealloc = 1024

// tokens reads whitespace-separated tokens, keeping count of them for error messages
type tokens struct {
	sc    *bufio.Scanner
	count int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

func (t *tokens) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", errors.Wrapf(err, "Failed to read %s (token %d)", what, t.count)
		}

		return "", errors.Wrapf(ErrFormat, "Unexpected end of input reading %s (token %d)", what, t.count)
	}

	t.count++
	return t.sc.Text(), nil
}

// size reads a non-negative integer
func (t *tokens) size(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrFormat, "Bad %s %q (token %d)", what, s, t.count)
	}

	return n, nil
}

func (t *tokens) float(what string) (float64, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrFormat, "Bad %s %q (token %d)", what, s, t.count)
	}

	return f, nil
}

func (t *tokens) unit() (*Unit, error) {
	n, err := t.size("number of weights")
	if err != nil {
		return nil, err
	}

	// counts come from the stream, so space is only taken as the values are actually read
	ws := make([]float64, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		w, err := t.float("weight")
		if err != nil {
			return nil, err
		}

		ws = append(ws, w)
	}

	u := new(Unit)
	u.weights = ws
	return u, nil
}

// units reads n Units, each of which must have the given number of weights
func (t *tokens) units(n, numWeights int, layer string) ([]*Unit, error) {
	us := make([]*Unit, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		u, err := t.unit()
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to read %s unit %d", layer, i)
		}

		if u.NumInputs() != numWeights {
			return nil, errors.Wrapf(ErrFormat, "%s unit %d has %d weights, expected %d", layer, i, u.NumInputs(), numWeights)
		}

		us = append(us, u)
	}

	return us, nil
}

// DecodeUnit reads a Unit from its text encoding. Because input is buffered, r should not be used
// for anything else afterwards.
func DecodeUnit(r io.Reader) (*Unit, error) {
	return newTokens(r).unit()
}

// DecodePerceptron reads a Perceptron from its text encoding, as written by *Perceptron.Encode.
// Errors from malformed input have ErrFormat as their cause.
func DecodePerceptron(r io.Reader) (*Perceptron, error) {
	t := newTokens(r)

	var header [3]int
	var err error
	for i, what := range []string{"number of inputs", "number of outputs", "number of output units"} {
		if header[i], err = t.size(what); err != nil {
			return nil, errors.Wrapf(err, "Can't decode perceptron")
		}
	}

	if header[1] != header[2] {
		return nil, errors.Wrapf(ErrFormat, "Can't decode perceptron, %d outputs but %d output units", header[1], header[2])
	}

	p := &Perceptron{nInputs: header[0]}
	if p.units, err = t.units(header[2], header[0], "output"); err != nil {
		return nil, errors.Wrapf(err, "Can't decode perceptron")
	}

	return p, nil
}

// DecodeMultilayer reads a Multilayer from its text encoding, as written by *Multilayer.Encode.
// Errors from malformed input have ErrFormat as their cause. The returned Multilayer must be
// evaluated before it can be trained.
func DecodeMultilayer(r io.Reader) (*Multilayer, error) {
	t := newTokens(r)

	var header [4]int
	var err error
	for i, what := range []string{"number of inputs", "number of outputs", "number of hidden units", "number of output units"} {
		if header[i], err = t.size(what); err != nil {
			return nil, errors.Wrapf(err, "Can't decode multilayer network")
		}
	}

	nInputs, nHidden, nOutputs := header[0], header[2], header[3]
	if header[1] != nOutputs {
		return nil, errors.Wrapf(ErrFormat, "Can't decode multilayer network, %d outputs but %d output units", header[1], nOutputs)
	}

	hidden, err := t.units(nHidden, nInputs, "hidden")
	if err != nil {
		return nil, errors.Wrapf(err, "Can't decode multilayer network")
	}
	output, err := t.units(nOutputs, nHidden, "output")
	if err != nil {
		return nil, errors.Wrapf(err, "Can't decode multilayer network")
	}

	// the scratch space is sized only once every Unit has been read
	m := newMultilayer(nInputs, nHidden, nOutputs)
	m.hidden, m.output = hidden, output
	return m, nil
}

// Kinds of Network with a registered decoder. Encode and Decode prefix the text encoding with the
// kind on its own line.
const (
	KindPerceptron = "perceptron"
	KindMultilayer = "multilayer"
)

// Kinded is implemented by Networks that can be written with Encode.
type Kinded interface {
	Network

	// Kind returns the name the type of Network is registered under
	Kind() string
	Encode(io.Writer) error
}

// Kind is the implementation of Kinded.
func (p *Perceptron) Kind() string { return KindPerceptron }

// Kind is the implementation of Kinded.
func (m *Multilayer) Kind() string { return KindMultilayer }

var (
	kindsMux sync.RWMutex
	kinds    = make(map[string]func(io.Reader) (Network, error))
)

func init() {
	list := map[string]func(io.Reader) (Network, error){
		KindPerceptron: func(r io.Reader) (Network, error) { return DecodePerceptron(r) },
		KindMultilayer: func(r io.Reader) (Network, error) { return DecodeMultilayer(r) },
	}

	for kind, f := range list {
		if err := RegisterKind(kind, f); err != nil {
			panic(err)
		}
	}
}

// RegisterKind allows Decode to read other kinds of Network. Kinds cannot be registered twice.
func RegisterKind(kind string, decode func(io.Reader) (Network, error)) error {
	if decode == nil {
		return NilArgError{"decode function"}
	} else if kind == "" || strings.ContainsAny(kind, " \t\r\n") {
		return errors.Errorf("Can't register kind %q, must be a single non-empty word", kind)
	}

	kindsMux.Lock()
	defer kindsMux.Unlock()

	if kinds[kind] != nil {
		return errors.Wrapf(ErrRegisterTwice, "Can't register kind %q", kind)
	}

	kinds[kind] = decode
	return nil
}

// Encode writes the kind of the Network on its own line, followed by its text encoding.
func Encode(w io.Writer, net Kinded) error {
	if _, err := io.WriteString(w, net.Kind()+"\n"); err != nil {
		return errors.Wrapf(err, "Failed to write kind of network")
	}

	return net.Encode(w)
}

// Decode reads a Network written by Encode. If the kind has not been registered, the cause of the
// returned error is ErrUnknownKind.
func Decode(r io.Reader) (Network, error) {
	br := bufio.NewReader(r)

	line, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return nil, errors.Wrapf(ErrFormat, "Can't decode network, failed to read kind: %v", err)
	}

	kind := strings.TrimSpace(line)

	kindsMux.RLock()
	decode := kinds[kind]
	kindsMux.RUnlock()

	if decode == nil {
		return nil, errors.Wrapf(ErrUnknownKind, "Can't decode network of kind %q", kind)
	}

	return decode(br)
}

// Save writes the Network to the file at path, in the format given by Encode. If a file already
// exists there and overwrite is false, Save returns an error.
func Save(net Kinded, path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.Errorf("Can't save network, file %q already exists, and overwrite is not enabled", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't save network, couldn't create file %q", path)
	}

	if err = Encode(f, net); err != nil {
		f.Close()
		return errors.Wrapf(err, "Can't save network to %q", path)
	}

	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "Can't save network, failed to close %q", path)
	}

	return nil
}

// Load reads a Network from a file previously written by Save.
func Load(path string) (Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network, couldn't open %q", path)
	}

	defer f.Close()

	net, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't load network from %q", path)
	}

	return net, nil
}
