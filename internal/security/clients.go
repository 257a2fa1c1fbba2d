package security

// In-memory client registry (replace with DB/config later)
type Client struct {
	ID      string
	Secret  string
	Perms   []string // e.g. {"orders.read","orders.write"}
	Enabled bool
}

var Clients = map[string]Client{
	"portal-web": {ID: "portal-web", Secret: "portal-web-secret",
		Perms:   []string{"menu.read", "sessions.write", "orders.read", "orders.write"},
		Enabled: true},
	"admin-dashboard": {ID: "admin-dashboard", Secret: "admin-secret",
		Perms:   []string{"menu.read", "menu.write", "orders.read", "invoices.read"},
		Enabled: true},
	"svc-billing": {ID: "svc-billing", Secret: "billing-secret",
		Perms:   []string{"orders.read", "invoices.read"},
		Enabled: true},
}
