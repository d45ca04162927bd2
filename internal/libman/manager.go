package libman

import (
	"errors"
	"fmt"

	"alusus/internal/osal"
)

var (
	// ErrLibraryLoadFailed wraps the OS-level text of a failed load.
	ErrLibraryLoadFailed = errors.New("library load failed")
	// ErrUnknownLibrary reports a handle or id not in the registry.
	ErrUnknownLibrary = errors.New("unknown library")
)

type entry struct {
	handle   osal.Handle
	refcount int
	gateway  Gateway
}

// Manager keeps the ref-counted registry of loaded extension libraries.
// A handle appears at most once; its refcount equals the number of load
// calls not yet balanced by unload. Unloading never unmaps the underlying
// OS handle: the AST may still reference code that lives in the library,
// so handles are retained until process exit.
type Manager struct {
	root    any
	loader  osal.Loader
	entries []entry
}

func NewManager(root any, loader osal.Loader) *Manager {
	return &Manager{root: root, loader: loader}
}

// Load opens the library at path and registers it. When the gateway
// getter symbol is present it must produce a non-nil gateway; a nil one
// closes the handle and fails the load. Libraries without the symbol are
// registered gateway-less.
func (m *Manager) Load(path string) (osal.Handle, error) {
	handle, err := m.loader.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrLibraryLoadFailed, err.Error())
	}

	var gateway Gateway
	if sym, symErr := m.loader.Sym(handle, GatewayGetterSymbol); symErr == nil {
		getter, ok := sym.(GatewayGetter)
		if !ok {
			if ptr, isPtr := sym.(*GatewayGetter); isPtr {
				getter, ok = *ptr, true
			}
		}
		if !ok {
			m.loader.Close(handle)
			return 0, fmt.Errorf("%w: symbol %s has the wrong type", ErrLibraryLoadFailed, GatewayGetterSymbol)
		}
		gateway = getter()
		if gateway == nil {
			m.loader.Close(handle)
			return 0, fmt.Errorf("%w: %s returned no gateway", ErrLibraryLoadFailed, GatewayGetterSymbol)
		}
	}

	m.AddLibrary(handle, gateway)
	return handle, nil
}

// AddLibrary registers a handle or bumps its refcount. The first
// registration invokes Initialize; repeats invoke InitializeDuplicate.
// Re-registering a handle with a different gateway is a contract
// violation.
func (m *Manager) AddLibrary(handle osal.Handle, gateway Gateway) {
	for i := range m.entries {
		if m.entries[i].handle == handle {
			if m.entries[i].gateway != gateway {
				panic("libman: one handle registered with two gateways")
			}
			m.entries[i].refcount++
			if gateway != nil {
				gateway.InitializeDuplicate(m.root)
			}
			return
		}
	}
	m.entries = append(m.entries, entry{handle: handle, refcount: 1, gateway: gateway})
	if gateway != nil {
		gateway.Initialize(m.root)
	}
}

// RemoveLibrary decrements the refcount, invoking Uninitialize on the
// final removal and UninitializeDuplicate otherwise.
func (m *Manager) RemoveLibrary(handle osal.Handle) error {
	for i := range m.entries {
		if m.entries[i].handle != handle {
			continue
		}
		if m.entries[i].refcount == 1 {
			if gw := m.entries[i].gateway; gw != nil {
				gw.Uninitialize(m.root)
			}
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
		} else {
			m.entries[i].refcount--
			if gw := m.entries[i].gateway; gw != nil {
				gw.UninitializeDuplicate(m.root)
			}
		}
		return nil
	}
	return fmt.Errorf("%w: handle %d", ErrUnknownLibrary, handle)
}

// Find returns the handle whose gateway reports libID, or 0.
func (m *Manager) Find(libID string) osal.Handle {
	for i := range m.entries {
		if gw := m.entries[i].gateway; gw != nil && gw.LibraryID() == libID {
			return m.entries[i].handle
		}
	}
	return 0
}

func (m *Manager) GatewayByHandle(handle osal.Handle) (Gateway, error) {
	for i := range m.entries {
		if m.entries[i].handle == handle {
			return m.entries[i].gateway, nil
		}
	}
	return nil, fmt.Errorf("%w: handle %d", ErrUnknownLibrary, handle)
}

func (m *Manager) GatewayByID(libID string) (Gateway, error) {
	for i := range m.entries {
		if gw := m.entries[i].gateway; gw != nil && gw.LibraryID() == libID {
			return gw, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownLibrary, libID)
}

// Refcount returns the current count for a handle, 0 when absent.
func (m *Manager) Refcount(handle osal.Handle) int {
	for i := range m.entries {
		if m.entries[i].handle == handle {
			return m.entries[i].refcount
		}
	}
	return 0
}

func (m *Manager) Count() int { return len(m.entries) }

// Unload balances one Load. The OS handle is left mapped; see the
// Manager doc.
func (m *Manager) Unload(handle osal.Handle) error {
	return m.RemoveLibrary(handle)
}

// UnloadAll unloads from the newest entry backwards until the registry is
// empty.
func (m *Manager) UnloadAll() {
	for len(m.entries) > 0 {
		last := m.entries[len(m.entries)-1].handle
		// Ignoring the error: the handle was just read from the registry.
		_ = m.Unload(last)
	}
}
