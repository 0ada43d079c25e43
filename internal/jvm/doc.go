// Package jvm locates the host's Java runtime and reads its system
// properties.
//
// The runtime is found via Locate (configured path, $JAVA_HOME, then $PATH)
// and queried with:
//
//	java -XshowSettings:properties -version
//
// which prints every system property before the version banner. Only the
// properties are kept; ParseSettings turns the block into a
// report.Properties snapshot.
//
// A missing runtime, a probe timeout or an unparseable answer are ordinary
// outcomes for callers: the java attributes are then simply absent.
package jvm
