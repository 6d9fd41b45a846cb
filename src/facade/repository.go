package facade

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"designpatterns/src/timing"
)

// DefaultURL is the endpoint the repository talks to.
const DefaultURL = "https://www.google.com/"

// Response is what the caller hands back for a GET.
type Response struct {
	Code int
	Data string
}

// NetworkCaller simulates a chatty HTTP client: it traces every step and
// pauses for a second per request. Nothing leaves the process.
type NetworkCaller struct {
	out   io.Writer
	clock timing.Clock
	rng    *rand.Rand
	logger zerolog.Logger
	Delay  time.Duration
}

// NewNetworkCaller builds a caller writing traces to out.
func NewNetworkCaller(out io.Writer, clock timing.Clock, rng *rand.Rand) *NetworkCaller {
	return &NetworkCaller{out: out, clock: clock, rng: rng, logger: zerolog.Nop(), Delay: time.Second}
}

// WithLogger records each simulated request on logger at debug level.
func (c *NetworkCaller) WithLogger(logger zerolog.Logger) *NetworkCaller {
	c.logger = logger
	return c
}

// Get performs a simulated GET and returns a random payload.
func (c *NetworkCaller) Get(url string) Response {
	fmt.Fprintf(c.out, "GET request from %s ...\n", url)
	c.clock.Sleep(c.Delay)
	resp := c.parse(strconv.FormatInt(c.rng.Int64(), 10))
	fmt.Fprintf(c.out, "Success! Code: %d\n", resp.Code)
	c.trace("GET", url, resp.Code)
	return resp
}

// Post performs a simulated POST.
func (c *NetworkCaller) Post(url, data string) {
	fmt.Fprintf(c.out, "POST request to %s ...\n", url)
	c.clock.Sleep(c.Delay)
	fmt.Fprintln(c.out, "Success! Code: 200")
	c.trace("POST", url, 200)
}

func (c *NetworkCaller) trace(method, url string, code int) {
	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("code", code).
		Dur("delay", c.Delay).
		Msg("simulated request")
}

func (c *NetworkCaller) parse(data string) Response {
	fmt.Fprintln(c.out, "Parsing data from server...")
	return Response{Code: 200, Data: data}
}

// Repository hides the caller behind fetch and save.
type Repository struct {
	api *NetworkCaller
	url string
}

// NewRepository wraps api for DefaultURL.
func NewRepository(api *NetworkCaller) *Repository {
	return &Repository{api: api, url: DefaultURL}
}

// Fetch returns the payload of a GET.
func (r *Repository) Fetch() string {
	return r.api.Get(r.url).Data
}

// Save posts data.
func (r *Repository) Save(data string) {
	r.api.Post(r.url, data)
}

// Demo fetches then saves through the repository.
func Demo(w io.Writer, clock timing.Clock, rng *rand.Rand, logger zerolog.Logger) error {
	repo := NewRepository(NewNetworkCaller(w, clock, rng).WithLogger(logger))
	data := repo.Fetch()
	if _, err := fmt.Fprintf(w, "Fetched %s\n\n", data); err != nil {
		return err
	}
	repo.Save("Hello World!")
	return nil
}
