package worker

import (
	"github.com/Pomi44/OIB/internal/services/search"
	"github.com/Pomi44/OIB/internal/services/search/candidate"
	"github.com/Pomi44/OIB/internal/services/search/digest"
	"github.com/Pomi44/OIB/internal/services/search/progress"
	"github.com/Pomi44/OIB/pkg"
)

// Worker scans one range of a keyspace. It owns its hasher and candidate buffer,
// so a Worker must not be shared between goroutines.
type Worker struct {
	gen     *candidate.Generator
	matcher *digest.Matcher
	buf     []byte
}

func New(spec *search.Spec, alg digest.Algorithm) (*Worker, error) {
	gen, err := candidate.New(spec)
	if err != nil {
		return nil, err
	}

	return &Worker{
		gen:     gen,
		matcher: digest.NewMatcher(alg, spec.TargetDigest),
		buf:     gen.Buffer(),
	}, nil
}

// Scan walks r in increasing index order. The token is checked before every candidate,
// so after it is set at most one more candidate is examined.
func (w *Worker) Scan(r pkg.Range, token *Token, counter *progress.Counter) (*search.Result, error) {
	for index := r.Start; index < r.End; index++ {
		if token.Cancelled() {
			return search.NotFound(), nil
		}

		if err := w.gen.Fill(w.buf, index); err != nil {
			return nil, err
		}

		counter.Inc()

		if w.matcher.Match(w.buf) {
			return search.Found(string(w.buf), index), nil
		}
	}

	return search.NotFound(), nil
}

// Scan is the one-shot form of Worker.Scan.
func Scan(spec *search.Spec, alg digest.Algorithm, r pkg.Range, token *Token, counter *progress.Counter) (*search.Result, error) {
	w, err := New(spec, alg)
	if err != nil {
		return nil, err
	}
	return w.Scan(r, token, counter)
}
