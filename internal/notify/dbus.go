package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyService = "org.freedesktop.Notifications"
	notifyPath    = "/org/freedesktop/Notifications"
	notifyMethod  = "org.freedesktop.Notifications.Notify"
	notifyAppName = "salahbar"
	notifyAppIcon = "" // the bar supplies its own iconography
)

// DBusNotifier sends desktop notifications through the session bus.
type DBusNotifier struct {
	conn *dbus.Conn
}

// NewDBusNotifier connects to the session bus.
func NewDBusNotifier() (*DBusNotifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &DBusNotifier{conn: conn}, nil
}

// Notify sends a transient notification with the given urgency. The
// notification expires after ExpireTimeout.
func (n *DBusNotifier) Notify(urgency Urgency, summary, body string) error {
	obj := n.conn.Object(notifyService, dbus.ObjectPath(notifyPath))
	call := obj.Call(notifyMethod, 0,
		notifyAppName,
		uint32(0), // no notification replacement
		notifyAppIcon,
		summary,
		body,
		[]string{},
		map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(urgency)),
		},
		int32(ExpireTimeout),
	)
	return call.Err
}

// Close releases the bus connection.
func (n *DBusNotifier) Close() error {
	return n.conn.Close()
}

var _ Notifier = (*DBusNotifier)(nil)
