package pagination

// PageDefaultSize is the page size used when the request does not set one
const PageDefaultSize = 20

// PageMaxSize caps the page size a request may ask for
const PageMaxSize = 100
