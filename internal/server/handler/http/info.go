package http

import (
	"io/fs"
	"net/http"
	"path"

	"github.com/atinyakov/oceanview/internal/rates"
	"github.com/atinyakov/oceanview/internal/server/response"
)

// HelpText is the usage guide served by /api/help and printed by the CLI
// client.
const HelpText = "How to use Ocean View Resort Reservation System\n" +
	"\n1) Login: Use your username/password to access the system.\n" +
	"2) Add Reservation: Enter reservation number, guest details, room type and dates.\n" +
	"3) Display Reservation: Search by reservation number to view full details.\n" +
	"4) Bill: Enter reservation number to calculate nights and total cost.\n" +
	"5) Logout/Exit: Logout to end your session safely.\n" +
	"\nNotes:\n" +
	"- Reservation numbers must be unique.\n" +
	"- Check-out date must be after check-in date.\n"

// RatesResponse lists the nightly rate of every room type.
type RatesResponse struct {
	OK    bool         `json:"ok"`
	Rates []rates.Rate `json:"rates"`
}

// HelpResponse carries the usage guide.
type HelpResponse struct {
	OK   bool   `json:"ok"`
	Text string `json:"text"`
}

// Rates serves the rate table. It is public.
func Rates(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, RatesResponse{OK: true, Rates: rates.Default()})
}

// Help serves the usage guide. It is public.
func Help(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, HelpResponse{OK: true, Text: HelpText})
}

// Health reports that the process is serving.
func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// NotFound answers unknown API paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusNotFound, "Not found")
}

// Static serves files from dir with caching disabled. "/" maps to
// index.html; directories without one are 404, never listed. Anything other
// than GET and HEAD is rejected.
func Static(dir string) http.Handler {
	files := http.FileServer(noListingFS{http.Dir(dir)})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		files.ServeHTTP(w, r)
	})
}

// noListingFS hides directories that have no index.html.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.IsDir() {
		return f, nil
	}
	index, err := n.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	_ = index.Close()
	return f, nil
}
