package credentials

// Record pairs an external identity with one credential token. Every live
// Record is internally consistent: the username and password fields are
// exactly what Decode(token) yields, because a Record is only ever built by
// encoding a fresh pair or by decoding a stored token. The token is the only
// field that is ever persisted.
type Record struct {
	identity string
	username string
	password string
	token    string
}

// NewRecord encodes the pair eagerly and returns the finished record.
// It fails only if the username contains the separator or the codec cannot
// draw entropy.
func NewRecord(codec Codec, identity, username, password string) (*Record, error) {
	token, err := codec.Encode(username, password)
	if err != nil {
		return nil, err
	}
	return &Record{
		identity: identity,
		username: username,
		password: password,
		token:    token,
	}, nil
}

// RecordFromToken reconstructs a record from its stored token. Corrupt or
// tampered tokens fail with ErrDecode rather than producing garbage fields.
func RecordFromToken(codec Codec, identity, token string) (*Record, error) {
	username, password, err := codec.Decode(token)
	if err != nil {
		return nil, err
	}
	return &Record{
		identity: identity,
		username: username,
		password: password,
		token:    token,
	}, nil
}

// Identity returns the external caller id, the store's primary key.
func (r *Record) Identity() string { return r.identity }

// Username returns the decoded username.
func (r *Record) Username() string { return r.username }

// Password returns the decoded password.
func (r *Record) Password() string { return r.password }

// Token returns the opaque serialized form, the only representation that
// leaves this package for persistence or transmission.
func (r *Record) Token() string { return r.token }
