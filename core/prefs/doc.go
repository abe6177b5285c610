/*
Package prefs implements user-preference registers for invisibles display.

Preferences are boolean values addressed by string keys. Clients may push
transient overrides in nested groups (in the manner of typesetting
registers), and may subscribe to changes of a set of keys. Change delivery
is synchronous and happens on the thread calling Set; the package performs
no locking of its own.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package prefs
