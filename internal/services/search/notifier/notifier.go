package notifier

import "github.com/Pomi44/OIB/internal/services/search"

type Notifier interface {
	Notify(result *search.Result) error
}
