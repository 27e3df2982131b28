// Package useragent formats the HTTP User-Agent an app sends from a device
// and parses it back on the server side.
//
// The format is
//
//	<AppName>/<AppVersion> (<ModelID>; iOS <OSVersion>; Scale/<Scale>)
//
// for example "Demo/1.4.2 (iPhone7,2; iOS 8.1.2; Scale/2.00)". The scale is
// always written with two decimals.
//
// # Usage
//
// On the device:
//
//	ua, err := useragent.Format(kit)
//	if err != nil {
//		return err
//	}
//	req.Header.Set("User-Agent", ua)
//
// On the server:
//
//	client, err := useragent.Parse(r.UserAgent())
//	if errors.Is(err, useragent.ErrMalformedUserAgent) {
//		// not one of our apps
//	}
//	if client.IsIPad() {
//		// serve tablet assets
//	}
//
// Parse classifies the model identifier with the default hardware table;
// identifiers it does not know yield hardware.Unknown. Malformed app or OS
// versions are returned as a wrapped *version.ParseError.
package useragent
