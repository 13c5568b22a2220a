/*
Package tracker tracks unsaved edits in a form.

A Tracker is attached to one form element of a dom.Document. At attach time it
records a canonical value for every observable control (the baseline) and
subscribes to each control's event:

  - text-like inputs and textareas: input
  - checkboxes and radios: click
  - selects and file inputs: change

Whenever a control fires, its current value is compared with the baseline. A
control that differs is flagged as changed and it and its label get the
configured class (default "control-changed"); a control that returns to its
baseline value is unflagged again. The form is dirty while any control is
flagged, and the form's reset control is enabled exactly while the form is
dirty.

Resets can be gated behind a confirmation: the OnConfirmReset hook receives a
continuation that performs the reset when called. Not calling it cancels the
reset and leaves the form dirty.

Dependencies (see Bind) make other elements follow a source control, for
example enabling a field only while a checkbox is checked.
*/
package tracker
