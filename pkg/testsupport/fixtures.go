// Package testsupport holds the QML fixtures shared across package tests.
package testsupport

// NestedDocument uses one property or child per line throughout.
const NestedDocument = `
ApplicationWindow {
    id: root
    title: "Demo"
    width: 320
    height: 200

    Column {
        spacing: 2
        Text {
            id: message
            text: "Hello"
        }
        Button {
            id: okButton
            text: "OK"
        }
    }
}
`

// InlineDocument declares the column children on single lines.
const InlineDocument = `
ApplicationWindow {
    Column {
        Text { id: inlineText; text: "Inline" }
        Label { text: "Secondary" }
        Button { text: "Run" }
    }
}
`

// BindingDocument leaves raw bindings in place for a resolver to substitute.
const BindingDocument = `
ApplicationWindow {
    title: "Bindings"
    Column {
        spacing: 0
        Text { text: greeter.message }
        TextField { placeholderText: "name" }
        Button { text: actionLabel }
    }
}
`
