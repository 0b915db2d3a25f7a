// Package naming holds the pure string transforms shared by the encoder and
// decoder: display-name formatting, page-suffix stripping, structural key
// normalisation and label sanitising. Nothing here keeps state beyond a
// lazily built sanitiser policy.
package naming
