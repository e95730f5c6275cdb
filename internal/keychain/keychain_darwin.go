//go:build darwin

package keychain

import (
	"errors"

	gokeychain "github.com/keybase/go-keychain"
)

// SystemVault adapts the macOS keychain Security services to the Vault
// interface. Attribute queries map onto generic-password items: the
// application tag becomes the service attribute and the label the
// account. The declared key type/class attributes have no generic-
// password equivalent and are not forwarded.
type SystemVault struct{}

// NewSystemVault creates a vault backed by the macOS keychain.
func NewSystemVault() *SystemVault {
	return &SystemVault{}
}

func (v *SystemVault) Add(query AttributeQuery) Status {
	data, ok := query[AttrValueData].Bytes()
	if !ok {
		return StatusParam
	}

	item := gokeychain.NewItem()
	item.SetSecClass(gokeychain.SecClassGenericPassword)
	item.SetService(query.Tag())
	item.SetAccount(query.Label())
	item.SetLabel(query.Label())
	item.SetData(data)
	item.SetSynchronizable(gokeychain.SynchronizableNo)
	item.SetAccessible(gokeychain.AccessibleWhenUnlockedThisDeviceOnly)

	return statusFromKeychain(gokeychain.AddItem(item))
}

func (v *SystemVault) Lookup(query AttributeQuery) (Status, any) {
	q := gokeychain.NewItem()
	q.SetSecClass(gokeychain.SecClassGenericPassword)
	q.SetService(query.Tag())
	q.SetAccount(query.Label())
	q.SetMatchLimit(gokeychain.MatchLimitOne)
	q.SetReturnData(true)

	results, err := gokeychain.QueryItem(q)
	if err != nil {
		return statusFromKeychain(err), nil
	}
	if len(results) == 0 {
		return StatusItemNotFound, nil
	}
	return StatusSuccess, results[0].Data
}

func (v *SystemVault) Delete(query AttributeQuery) Status {
	return statusFromKeychain(
		gokeychain.DeleteGenericPasswordItem(query.Tag(), query.Label()))
}

// statusFromKeychain recovers the native status code from a go-keychain
// error. go-keychain's Error type is the OSStatus itself, so no further
// mapping table is needed here.
func statusFromKeychain(err error) Status {
	if err == nil {
		return StatusSuccess
	}
	var kcErr gokeychain.Error
	if errors.As(err, &kcErr) {
		return Status(kcErr)
	}
	return StatusBadReq
}
