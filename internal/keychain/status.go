package keychain

// Status is a vault status code. The values mirror the OSStatus
// enumeration the macOS Security framework reports for keychain calls;
// the non-darwin backends map their native errors onto the same codes so
// callers see one taxonomy everywhere.
type Status int32

const (
	StatusSuccess               Status = 0
	StatusUnimplemented         Status = -4
	StatusIO                    Status = -36
	StatusParam                 Status = -50
	StatusAllocate              Status = -108
	StatusUserCanceled          Status = -128
	StatusBadReq                Status = -909
	StatusNotAvailable          Status = -25291
	StatusReadOnly              Status = -25292
	StatusAuthFailed            Status = -25293
	StatusNoSuchKeychain        Status = -25294
	StatusInvalidKeychain       Status = -25295
	StatusDuplicateKeychain     Status = -25296
	StatusDuplicateItem         Status = -25299
	StatusItemNotFound          Status = -25300
	StatusBufferTooSmall        Status = -25301
	StatusDataTooLarge          Status = -25302
	StatusNoSuchAttr            Status = -25303
	StatusInvalidItemRef        Status = -25304
	StatusInvalidSearchRef      Status = -25305
	StatusNoSuchClass           Status = -25306
	StatusNoDefaultKeychain     Status = -25307
	StatusInteractionNotAllowed Status = -25308
	StatusDecode                Status = -26275
	StatusMissingEntitlement    Status = -34018
	StatusCertificateExpired    Status = -67818
)

var statusText = map[Status]string{
	StatusSuccess:               "No error.",
	StatusUnimplemented:         "Function or operation not implemented.",
	StatusIO:                    "I/O error.",
	StatusParam:                 "One or more parameters passed to the function were not valid.",
	StatusAllocate:              "Failed to allocate memory.",
	StatusUserCanceled:          "User canceled the operation.",
	StatusBadReq:                "Bad parameter or invalid state for operation.",
	StatusNotAvailable:          "No keychain is available. You may need to restart your computer.",
	StatusReadOnly:              "This keychain cannot be modified.",
	StatusAuthFailed:            "The user name or passphrase you entered is not correct.",
	StatusNoSuchKeychain:        "The specified keychain could not be found.",
	StatusInvalidKeychain:       "The specified keychain is not a valid keychain file.",
	StatusDuplicateKeychain:     "A keychain with the same name already exists.",
	StatusDuplicateItem:         "The specified item already exists in the keychain.",
	StatusItemNotFound:          "The specified item could not be found in the keychain.",
	StatusBufferTooSmall:        "There is not enough memory available to use the specified item.",
	StatusDataTooLarge:          "This item contains information which is too large or in a format that cannot be displayed.",
	StatusNoSuchAttr:            "The specified attribute does not exist.",
	StatusInvalidItemRef:        "The specified item is no longer valid. It may have been deleted from the keychain.",
	StatusInvalidSearchRef:      "Unable to search the current keychain.",
	StatusNoSuchClass:           "The specified item does not appear to be a valid keychain item.",
	StatusNoDefaultKeychain:     "A default keychain could not be found.",
	StatusInteractionNotAllowed: "User interaction is not allowed.",
	StatusDecode:                "Unable to decode the provided data.",
	StatusMissingEntitlement:    "A required entitlement is not present.",
	StatusCertificateExpired:    "The certificate has expired.",
}

// Describe returns the fixed human-readable sentence for a status code.
// Unmapped codes fall back to "Error". The strings are for logs and
// humans, not for machine parsing.
func (s Status) Describe() string {
	if msg, ok := statusText[s]; ok {
		return msg
	}
	return "Error"
}
