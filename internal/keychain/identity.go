package keychain

// Well-known credential identities. Tags are reverse-DNS service
// identifiers, labels distinguish items within a tag. These are the
// identities a value-encryption layer on top of this package would use;
// no such layer exists yet, so today they name plain stored values.
const (
	TagEncryptionKey   = "com.lockbox.key.encryption"
	LabelEncryptionKey = "Encryption Key"

	TagInitializationVector   = "com.lockbox.key.iv"
	LabelInitializationVector = "Initialization Vector"

	TagSalt   = "com.lockbox.key.salt"
	LabelSalt = "Salt"
)

// AllLabels returns the labels of every built-in identity. The order is
// index-aligned with AllTags because Clear zips the two lists by
// position.
func AllLabels() []string {
	return []string{LabelEncryptionKey, LabelInitializationVector, LabelSalt}
}

// AllTags returns the tags of every built-in identity, in AllLabels
// order.
func AllTags() []string {
	return []string{TagEncryptionKey, TagInitializationVector, TagSalt}
}
